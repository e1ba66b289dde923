// Package pulsesdk provides the request and response types of the
// Progressive Pulse HTTP API, plus a small client for server-to-server
// callers.
//
// The types here are the wire contract; handlers and the client both
// marshal through them so the two sides cannot drift apart.
package pulsesdk
