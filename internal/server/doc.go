// Package server wires and runs the application's HTTP transport.
//
// It owns startup, signal handling, and graceful shutdown of the server.
package server
