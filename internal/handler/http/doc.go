// Package http contains the REST transport of notekeep: chi routes, request
// payload validation, middleware (trace ids, request logging, CORS, panic
// recovery), and the mapping of store sentinel errors onto HTTP status codes.
//
// Handlers are stateless; all state lives behind the injected services.
package http
