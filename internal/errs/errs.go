// Package errs define custom error types and utilities.
//
// Every failure leaving the API is rendered as a single JSON
// envelope, {"error": "<message>"}, whatever layer raised it.
// HTTPError carries the status and a machine code for logs;
// only the message reaches the client.
package errs
