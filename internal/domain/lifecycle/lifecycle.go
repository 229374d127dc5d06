// Package lifecycle holds constants shared by components that start and stop
// with the application.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown.
const DefaultTimeout = 30 * time.Second
