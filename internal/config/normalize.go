package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCorpus() error {
	var err error
	if strings.TrimSpace(c.Corpus.Path) == "" {
		c.Corpus.Path = defaultCorpusPath
	}
	if c.Corpus.Path, err = expandPath(c.Corpus.Path); err != nil {
		return fmt.Errorf("corpus.path: %w", err)
	}
	// An empty alias path disables the alias table.
	if strings.TrimSpace(c.Corpus.AliasPath) != "" {
		if c.Corpus.AliasPath, err = expandPath(c.Corpus.AliasPath); err != nil {
			return fmt.Errorf("corpus.alias_path: %w", err)
		}
	} else {
		c.Corpus.AliasPath = ""
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		if expanded, err := expandPath(c.Logging.Dir); err == nil {
			c.Logging.Dir = expanded
		}
	}
}
