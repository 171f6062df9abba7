// Package api implements the HTTP handlers for the practice and dashboard
// endpoints, plus the mapping from internal errors to HTTP status codes.
package api
