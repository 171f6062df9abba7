// Package vocab provides the HTTP client for the external vocabulary
// microservice. The service is the source of truth for words; this client
// performs a fresh round trip on every call and keeps no local cache.
package vocab
