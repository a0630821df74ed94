// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, CORS, request ids, panic recovery
// and the final error response.
package middleware
