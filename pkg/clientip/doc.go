// Package clientip resolves the address of the caller behind optional
// reverse proxies.
//
// With trustProxy unset only RemoteAddr is used. With it set the first valid
// address from CF-Connecting-IP, X-Forwarded-For or X-Real-IP wins, falling
// back to RemoteAddr. Middleware stores the result for FromContext, and
// LoggerExtractor adds it to request logs as client_ip.
package clientip
