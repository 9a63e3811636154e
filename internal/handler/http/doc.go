// Package http implements the HTTP transport layer of the blog API.
//
// It exposes route wiring, request handlers, and the middleware chain used
// by the REST API. Cross-cutting concerns such as CORS, JSON body parsing,
// security headers, response compression, access logging, rate limiting
// and authentication are handled in this package before requests are
// delegated to the service layer. Every failure ends in the global error
// handler, which writes a JSON body.
package http
