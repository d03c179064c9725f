package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MatchThreshold < 0 || c.Matching.MatchThreshold > 100 {
		return fmt.Errorf("matching.match_threshold must be between 0 and 100, got %d", c.Matching.MatchThreshold)
	}
	if c.Matching.TokenCorrectionThreshold < 0 || c.Matching.TokenCorrectionThreshold > 100 {
		return fmt.Errorf("matching.token_correction_threshold must be between 0 and 100, got %d", c.Matching.TokenCorrectionThreshold)
	}
	if c.Matching.MaxCandidates <= 0 {
		return fmt.Errorf("matching.max_candidates must be positive, got %d", c.Matching.MaxCandidates)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
