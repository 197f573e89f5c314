// Package http contains the HTTP transport layer: chi routers and handlers
// translating REST requests into service calls and service errors into
// RFC 7807 problem responses. Handlers own parameter parsing and
// validation; all computation lives in the services.
package http
