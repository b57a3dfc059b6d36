// Package http implements the REST transport of the contacts API.
//
// It exposes route wiring, request handlers and middleware. Bearer
// authentication, request tracing, access logging and response compression
// are applied here before requests reach the service layer.
package http
