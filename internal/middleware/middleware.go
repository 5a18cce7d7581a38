// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as admin authentication (bearer tokens), request logging, CORS,
// body limits, rate limiting, metrics and panic recovery.
package middleware
