package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/snonux/ecat/internal/io/dlog"
)

// fileConfig mirrors the JSON config file schema. Zero values mean the
// field was absent and the previous value stands.
type fileConfig struct {
	SqueezeLimit   int    `json:"SqueezeLimit"`
	TabReplacement string `json:"TabReplacement"`
	EndMarker      string `json:"EndMarker"`
	PollIntervalMS int    `json:"PollIntervalMS"`
	MmapThreshold  int64  `json:"MmapThreshold"`
	LogLevel       string `json:"LogLevel"`
}

// applyFile layers the JSON config file at path over o.
func (o *Options) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unable to parse config file %s: %w", path, err)
	}

	if fc.SqueezeLimit != 0 {
		o.SqueezeLimit = fc.SqueezeLimit
	}
	if fc.TabReplacement != "" {
		o.TabReplacement = fc.TabReplacement
	}
	if fc.EndMarker != "" {
		o.EndMarker = fc.EndMarker
	}
	if fc.PollIntervalMS != 0 {
		o.PollInterval = time.Duration(fc.PollIntervalMS) * time.Millisecond
	}
	if fc.MmapThreshold != 0 {
		o.MmapThreshold = fc.MmapThreshold
	}
	if fc.LogLevel != "" {
		level, err := dlog.ParseLevel(fc.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level in config file %s: %w", path, err)
		}
		o.LogLevel = level
	}
	return nil
}
