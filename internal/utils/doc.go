// Package utils provides helpers shared by the server and the client:
// constant-time password comparison, session token signing and parsing,
// JSON response writing and the HTTP client wrapper.
package utils
