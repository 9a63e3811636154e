// Package server runs the HTTP transport of the blog API.
//
// It separates binding the listener from serving so that callers can treat
// bind errors as fatal and log the bound address before the first request
// is accepted. Serving stops on context cancellation or on SIGINT, SIGTERM
// or SIGQUIT, followed by a graceful shutdown bounded by the configured
// timeout.
package server
