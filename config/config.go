// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvLoglevel = "IMAPSYNC_LOGLEVEL"
	EnvPidDir   = "IMAPSYNC_PID_DIR"
)

// Duration decodes "5s" style strings from the config file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Site struct {
	Name     string
	Database string

	EnableImap      bool
	EnableImapIdle  bool
	EnableImapWrite bool
	TaggingEnabled  bool

	PollingPeriod    Duration
	BatchImportEmail int
	PollingOldEmails int
	PollingNewEmails int
	MaxEmailSizeKB   int

	RequestsPerSecond float64
	Compress          bool

	SpamassassinHost string
	RspamdController string
	RspamdPassword   string
}

type Config struct {
	PidDir   string
	Replicas int

	StopTimeout       Duration
	ReconcileInterval Duration
	HeartbeatInterval Duration

	Sites []*Site `toml:"Site"`

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		PidDir:            os.TempDir(),
		Replicas:          1,
		StopTimeout:       Duration{10 * time.Second},
		ReconcileInterval: Duration{5 * time.Second},
		HeartbeatInterval: Duration{60 * time.Second},
	}

	md, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	for i, s := range config.Sites {
		applySiteDefaults(md, i, s)
	}

	err = loadEnv(filepath.Join(filepath.Dir(filename), ".env"), config)
	if err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// applySiteDefaults fills limits that were left out. Zero is a meaningful
// value for some of them, so the key must be absent from every [[Site]].
func applySiteDefaults(md toml.MetaData, index int, s *Site) {
	defined := func(key string) bool {
		for _, k := range md.Keys() {
			if len(k) == 2 && k[0] == "Site" && strings.EqualFold(k[1], key) {
				return true
			}
		}
		return false
	}
	if s.PollingPeriod.Duration == 0 {
		s.PollingPeriod = Duration{10 * time.Minute}
	}
	if s.BatchImportEmail == 0 && !defined("BatchImportEmail") {
		s.BatchImportEmail = 100
	}
	if s.PollingOldEmails == 0 && !defined("PollingOldEmails") {
		s.PollingOldEmails = 1000
	}
	if s.PollingNewEmails == 0 && !defined("PollingNewEmails") {
		s.PollingNewEmails = 250
	}
	if s.MaxEmailSizeKB == 0 {
		s.MaxEmailSizeKB = 10240
	}
	if len(strings.TrimSpace(s.Name)) == 0 {
		s.Name = fmt.Sprintf("site%d", index)
	}
}

func loadEnv(envFile string, c *Config) error {
	if _, err := os.Stat(envFile); err == nil {
		err = godotenv.Load(envFile)
		if err != nil {
			return fmt.Errorf("could not load env file %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvLoglevel); ok && len(v) > 0 {
		c.Loglevel = &v
	}
	if v, ok := os.LookupEnv(EnvPidDir); ok && len(v) > 0 {
		c.PidDir = v
	}

	return nil
}

func (c *Config) Site(name string) (*Site, error) {
	for _, s := range c.Sites {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("site %s is not configured", name)
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.PidDir, "PidDir must not be empty, set to a directory for the worker pid files"); err != nil {
		return err
	}

	if c.Replicas < 1 {
		return errors.New("Replicas must be at least 1")
	}

	if c.StopTimeout.Duration <= 0 {
		return errors.New("StopTimeout must be positive")
	}

	if len(c.Sites) == 0 {
		return errors.New("at least one [[Site]] must be configured")
	}

	names := map[string]bool{}
	for _, s := range c.Sites {
		if err := validateNonEmptyStringField(s.Database, fmt.Sprintf("Database of site %s must not be empty, set to a filename for the sqlite database", s.Name)); err != nil {
			return err
		}
		if names[s.Name] {
			return fmt.Errorf("site name %s is used more than once", s.Name)
		}
		names[s.Name] = true

		if s.BatchImportEmail < -1 {
			return fmt.Errorf("BatchImportEmail of site %s must be -1 or greater", s.Name)
		}
		if s.PollingOldEmails < -1 {
			return fmt.Errorf("PollingOldEmails of site %s must be -1 or greater", s.Name)
		}
		if s.PollingNewEmails < 0 {
			return fmt.Errorf("PollingNewEmails of site %s must not be negative", s.Name)
		}
		if s.RequestsPerSecond < 0 {
			return fmt.Errorf("RequestsPerSecond of site %s must not be negative", s.Name)
		}
		if len(s.SpamassassinHost) > 0 && len(s.RspamdController) > 0 {
			return fmt.Errorf("site %s configures both SpamassassinHost and RspamdController, only one spam checker can be used", s.Name)
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
