// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

type ConfigFunc func(c *configuration) error

// EnableWrite allows opening mailboxes read-write. Without it every change
// to the server is refused.
func EnableWrite() ConfigFunc {
	return func(c *configuration) error {
		c.WriteEnabled = true
		return nil
	}
}

// EnableCompress negotiates COMPRESS=DEFLATE when the server offers it.
func EnableCompress() ConfigFunc {
	return func(c *configuration) error {
		c.Compress = true
		return nil
	}
}

// RequestsPerSecond throttles round-trips to the server, zero disables it.
func RequestsPerSecond(rps float64) ConfigFunc {
	return func(c *configuration) error {
		if rps < 0 {
			return fmt.Errorf("RequestsPerSecond cannot be negative")
		}
		if rps > 0 {
			c.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
		return nil
	}
}

// IdlePollInterval sets how often NOOP is sent when the server cannot IDLE.
func IdlePollInterval(interval time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if interval <= 0 {
			return fmt.Errorf("IdlePollInterval must be positive")
		}
		c.IdlePollInterval = interval
		return nil
	}
}

type configuration struct {
	WriteEnabled bool
	Compress     bool

	Limiter          *rate.Limiter
	IdlePollInterval time.Duration
}
