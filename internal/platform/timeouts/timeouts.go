// Package timeouts defines shared timeout constants used by the HTTP server.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing a single rendered response.
const Write = 10 * time.Second

// Idle bounds keep-alive connections between requests.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
