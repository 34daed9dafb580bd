// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work (DB ping, server drain).
const DefaultTimeout = 30 * time.Second
