// Package server runs the agent's popup API server.
//
// It owns the HTTP server lifecycle: startup, OS signal handling, and
// graceful shutdown.
package server
