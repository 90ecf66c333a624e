// Package gateway is the API facade between the web frontend and the click,
// integration and statistic backend services.
//
// Each caller operation normalizes a sparse filter, calls one backend over
// gRPC while resolving offer and publisher names concurrently, shapes every
// record for the caller's role, and reassembles the backend's pagination
// block unchanged.
package gateway
