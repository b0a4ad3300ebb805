package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const (
	configFile      = "todo.toml"
	defaultFile     = "todo.json"
	defaultLogLevel = log.WarnLevel
)

type config struct {
	File     string `toml:"file"`
	LogLevel string `toml:"log_level"`

	level log.Level
}

func defaultConfig() *config {
	return &config{
		File:     defaultFile,
		LogLevel: defaultLogLevel.String(),
		level:    defaultLogLevel,
	}
}

// loadConfig reads the config file at pathname over the defaults. A missing file is not an error and yields the
// defaults. Any other error comes with the defaults too, so the caller can warn and carry on.
func loadConfig(pathname string) (*config, error) {
	c := defaultConfig()
	var decoded config
	md, err := toml.DecodeFile(pathname, &decoded)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config %s: %w", pathname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("config %s: unknown keys %s", pathname, strings.Join(keys, ", "))
	}
	level := c.level
	if decoded.LogLevel != "" {
		level, err = log.ParseLevel(decoded.LogLevel)
		if err != nil {
			return c, fmt.Errorf("config %s: %w", pathname, err)
		}
	}
	if decoded.File != "" {
		c.File = decoded.File
	}
	c.LogLevel = level.String()
	c.level = level
	return c, nil
}
