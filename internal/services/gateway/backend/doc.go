// Package backend invokes the click, integration, statistic and lookup
// services over gRPC.
//
// Clients wrap the generated stubs under api/gen/go and convert protobuf
// messages to the models in this package. They neither retry nor translate
// transport errors, so every failure reaches the caller exactly as the
// backend reported it. A message that cannot be decoded fails as
// CodeBackendFailure.
package backend
