// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, cancellation-driven shutdown, and graceful draining of all
// enabled transports.
package server
