// Package app runs the gateway process: it dials every backend, waits for
// each to report SERVING, and serves the HTTP API until the context ends.
package app
