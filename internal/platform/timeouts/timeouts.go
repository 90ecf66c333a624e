// Package timeouts defines the gateway's transport timeouts.
package timeouts

import "time"

// GRPCDial caps the wait for a backend to dial and report SERVING.
const GRPCDial = 2 * time.Second

// BackendRequest is the default deadline attached to each incoming HTTP
// request before it fans out to backends. The transport enforces it.
const BackendRequest = 5 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Idle limits how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
