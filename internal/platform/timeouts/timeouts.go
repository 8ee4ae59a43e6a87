// Package timeouts defines the shared timeouts for leasedesk servers and
// their storage backends.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreDial caps the wait for an external store, such as Redis, to answer
// its first ping at startup.
const StoreDial = 2 * time.Second
