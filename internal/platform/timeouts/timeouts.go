// Package timeouts defines shared timeout constants used by the demos.
package timeouts

import "time"

// Connect caps the wait for a database connection to answer its first ping.
const Connect = 2 * time.Second

// Shutdown limits how long a demo waits for pending spans to flush on exit.
const Shutdown = 5 * time.Second
