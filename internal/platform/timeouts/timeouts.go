// Package timeouts defines shared timeout constants for the web process.
package timeouts

import "time"

// APIRequest caps a single call to the reservation backend API.
const APIRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
