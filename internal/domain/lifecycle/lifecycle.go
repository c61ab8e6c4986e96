// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop work such as DB pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
