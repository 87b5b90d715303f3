// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores the id in the request context and echoes it on the response.
// LoggerExtractor adds it to log records as "request_id".
package requestid
