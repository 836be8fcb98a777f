// Package http implements the HTTP transport layer of the application.
//
// Mutations are form POSTs (multipart when a file is uploaded) and reads are
// GETs with query parameters. The caller is resolved once per request by the
// actor middleware, from a bearer token or the "userid" field, and handed to
// the service layer explicitly. Tracing, access logging and response
// compression are middleware as well.
package http
