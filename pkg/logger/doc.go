// Package logger builds the process-wide slog.Logger.
//
// Output format and level come from LOG_FORMAT and LOG_LEVEL; context
// extractors let middleware-provided values such as the request id appear on
// every record logged within a request.
package logger
