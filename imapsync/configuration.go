// SPDX-License-Identifier: GPL-3.0-or-later
package imapsync

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	DefaultPollingPeriod  = 10 * time.Minute
	DefaultImportLimit    = 100
	DefaultOldEmailsLimit = 1000
	DefaultNewEmailsLimit = 250
)

type ConfigFunc func(c *configuration) error

// EnableIdle lets Process wait for new mail with IDLE. The group and the
// server have to allow it too.
func EnableIdle() ConfigFunc {
	return func(c *configuration) error {
		c.IdleEnabled = true
		return nil
	}
}

// EnableWrite pushes local topic changes back to the mailbox.
func EnableWrite() ConfigFunc {
	return func(c *configuration) error {
		c.WriteEnabled = true
		return nil
	}
}

func EnableTagging() ConfigFunc {
	return func(c *configuration) error {
		c.TaggingEnabled = true
		return nil
	}
}

// PollingPeriod is the longest IDLE wait and the sleep between passes when
// the server cannot idle.
func PollingPeriod(period time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if period <= 0 {
			return fmt.Errorf("PollingPeriod must be positive")
		}
		c.PollingPeriod = period
		return nil
	}
}

// ImportLimit is the number of new mails above which a pass runs in import
// mode, -1 disables import mode.
func ImportLimit(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < -1 {
			return fmt.Errorf("ImportLimit cannot be below -1")
		}
		c.ImportLimit = limit
		return nil
	}
}

// OldEmailsLimit caps how many known mails are revisited per pass, -1
// revisits all of them.
func OldEmailsLimit(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < -1 {
			return fmt.Errorf("OldEmailsLimit cannot be below -1")
		}
		c.OldEmailsLimit = limit
		return nil
	}
}

// NewEmailsLimit caps how many new mails are received per pass, 0 receives
// all of them.
func NewEmailsLimit(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < 0 {
			return fmt.Errorf("NewEmailsLimit cannot be negative")
		}
		c.NewEmailsLimit = limit
		return nil
	}
}

// Site names the site the group belongs to. Log entries carrying it end up
// in the group's sync log.
func Site(name string) ConfigFunc {
	return func(c *configuration) error {
		c.Site = name
		return nil
	}
}

// RandSource replaces the source used to sample known mails.
func RandSource(source rand.Source) ConfigFunc {
	return func(c *configuration) error {
		if source == nil {
			return fmt.Errorf("RandSource cannot be nil")
		}
		c.Rand = rand.New(source)
		return nil
	}
}

type configuration struct {
	Site string

	IdleEnabled    bool
	WriteEnabled   bool
	TaggingEnabled bool

	PollingPeriod time.Duration

	ImportLimit    int
	OldEmailsLimit int
	NewEmailsLimit int

	Rand *rand.Rand
}

func defaultConfiguration() *configuration {
	return &configuration{
		PollingPeriod:  DefaultPollingPeriod,
		ImportLimit:    DefaultImportLimit,
		OldEmailsLimit: DefaultOldEmailsLimit,
		NewEmailsLimit: DefaultNewEmailsLimit,
		Rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
