// Package httpserver runs the HTTP listener with graceful shutdown on
// context cancellation or SIGINT/SIGTERM. Timeouts and the listen address
// come from the environment via Config.
package httpserver
