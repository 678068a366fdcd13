package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"

	"renamefiles/internal/logging"
)

// config is resolved once per invocation from flags and environment.
type config struct {
	pattern     string
	replacement *string
	recurse     bool
	preview     bool
	dir         string
	plain       bool
	logLevel    slog.Level
}

func loadConfig(v *viper.Viper, pattern string) (config, error) {
	if pattern == "" {
		return config{}, errors.New("pattern must not be empty")
	}

	level, err := logging.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return config{}, err
	}

	cfg := config{
		pattern:  pattern,
		recurse:  v.GetBool("recurse"),
		preview:  v.GetBool("test-run"),
		dir:      v.GetString("dir"),
		plain:    v.GetBool("plain"),
		logLevel: level,
	}
	if cfg.dir == "" {
		cfg.dir = "."
	}
	// An empty replacement is valid (it deletes the match), so presence is
	// decided by IsSet rather than the value.
	if v.IsSet("rep") {
		rep := v.GetString("rep")
		cfg.replacement = &rep
	}
	return cfg, nil
}
