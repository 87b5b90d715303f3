// Package redis connects to Redis with retries and exposes a readiness
// check. It backs the shared send rate limit when several instances run
// behind one load balancer.
package redis
