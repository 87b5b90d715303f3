// Package environment names the deployment environments the service runs in
// and carries the active one through request contexts.
//
// Parse normalises short aliases ("dev", "stage", "prod"). Middleware attaches
// an Environment to every request and LoggerExtractor surfaces it as an "env"
// log attribute.
package environment
