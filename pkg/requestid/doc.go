// Package requestid correlates log records belonging to one HTTP request.
//
// The middleware reuses a well-formed client-supplied X-Request-ID or
// generates a UUID, echoes it on the response, and makes it available via
// the context for handlers and the logger.
package requestid
