package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ncaa-rosters/internal/fetch"
	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/store"
	"ncaa-rosters/internal/teams"
	"ncaa-rosters/internal/telemetry"
	"ncaa-rosters/lib/configutil"

	"dario.cat/mergo"
)

// DefaultName is the configuration file looked up from the working directory
// upwards when no path is given.
const DefaultName = "roster.json5"

type Config struct {
	Teams    []teams.Team   `json:"teams"`
	Output   string         `json:"output"`
	Database store.Database `json:"database"`
	// Dump is a directory that receives a copy of every http exchange.
	Dump string `json:"dump"`
	// Delay, Timeout are go durations ("1s", "500ms").
	Delay     string `json:"delay"`
	Timeout   string `json:"timeout"`
	Retries   *int   `json:"retries"`
	UserAgent string `json:"user_agent"`
	Parallel  int    `json:"parallel"`
	// Sites maps a site identity to the strategy that should always be
	// tried first for it.
	Sites     map[string]string `json:"sites"`
	Telemetry telemetry.Config  `json:"telemetry"`
}

func Default() Config {
	retries := 2
	return Config{
		Teams:     teams.Default(),
		Output:    "rosters.json",
		Delay:     "1s",
		Timeout:   "10s",
		Retries:   &retries,
		UserAgent: fetch.DefaultUserAgent,
		Parallel:  1,
	}
}

// Load reads the configuration at path, or the nearest DefaultName when path
// is empty, and fills everything it leaves out from Default. A missing file
// is only an error when path was given explicitly.
func Load(path string) (Config, error) {
	var (
		config Config
		err    error
	)
	if path == "" {
		config, err = configutil.ReadRecursively[Config](DefaultName)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
	} else {
		config, err = configutil.ReadConfig[Config](path)
	}
	if err != nil {
		return Config{}, err
	}

	// mergo merges into the pointee, an explicit `retries: 0` would be
	// replaced by the default otherwise.
	var retries *int
	if config.Retries != nil {
		value := *config.Retries
		retries = &value
	}
	err = mergo.Merge(&config, Default())
	if err != nil {
		return Config{}, err
	}
	if retries != nil {
		config.Retries = retries
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	var errlist []error
	if _, err := parseDuration("delay", c.Delay); err != nil {
		errlist = append(errlist, err)
	}
	if _, err := parseDuration("timeout", c.Timeout); err != nil {
		errlist = append(errlist, err)
	}
	for identity, strategy := range c.Sites {
		if _, ok := roster.Strategy(strategy); !ok {
			errlist = append(errlist, fmt.Errorf("site %s: unknown strategy %q", identity, strategy))
		}
	}
	for _, t := range c.Teams {
		if t.Name == "" || t.URL == "" {
			errlist = append(errlist, fmt.Errorf("team %q: name and url are required", t.Name))
		}
		if _, ok := roster.Strategy(t.Strategy); t.Strategy != "" && !ok {
			errlist = append(errlist, fmt.Errorf("team %s: unknown strategy %q", t.Name, t.Strategy))
		}
	}
	return errors.Join(errlist...)
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", field)
	}
	return d, nil
}

// FetchOptions turns the configuration into fetch client options. It
// expects a validated config.
func (c Config) FetchOptions() fetch.Options {
	delay, _ := parseDuration("delay", c.Delay)
	timeout, _ := parseDuration("timeout", c.Timeout)
	retries := 0
	if c.Retries != nil {
		retries = *c.Retries
	}
	return fetch.Options{
		UserAgent: c.UserAgent,
		Timeout:   timeout,
		Retries:   retries,
		Delay:     delay,
	}
}

// Registry returns the built in site overrides plus the configured ones.
func (c Config) Registry() (*roster.Registry, error) {
	registry := roster.DefaultRegistry()
	for identity, strategy := range c.Sites {
		err := registry.RegisterStrategy(identity, strategy)
		if err != nil {
			return nil, err
		}
	}
	return registry, nil
}
