// Package logger provides structured logging functionality for the
// application, including helpers for carrying a request-scoped logger
// through a context.Context.
package logger
