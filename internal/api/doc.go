// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP to the calculator service and maps
// service errors to status codes without leaking internal details.
package api
