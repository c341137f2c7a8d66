// Package http implements the HTTP transport of the dashboard server.
//
// It wires the chi router, serves the page shell and its embedded assets,
// decodes JSON requests for the app registry and maps service errors to
// status codes and envelope messages. Request tracing, access logging and
// response compression are handled here as middleware.
package http
