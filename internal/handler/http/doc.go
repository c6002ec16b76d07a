// Package http implements the REST API of Fraud Shield on top of chi.
//
// Every request gets a trace id and a request-scoped logger, is access
// logged, may be gzip-compressed, and is protected by chi's Recoverer.
// Session-gated routes sit behind the auth middleware, which accepts a
// bearer token from the Authorization header or the "token" cookie and stores
// the verified identity in the request context. Errors are written as
// {"success":false,"message":...} bodies.
package http
