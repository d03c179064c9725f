package main

import (
	"strings"
	"sync"

	"log/slog"

	"github.com/spf13/cobra"

	"umascan/internal/config"
	"umascan/internal/logging"
	"umascan/internal/match"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the CLI logger from config, honoring the --log-level
// override.
func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		override := *cfg
		override.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		cfg = &override
	}
	return logging.NewFromConfig(cfg)
}

// newEngine builds a match engine and performs the initial corpus load. A
// load failure is reported through the logger; the engine still works in
// degraded mode so commands can show the empty state instead of aborting.
func (c *commandContext) newEngine(cmd *cobra.Command) (*match.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.newLogger()
	if err != nil {
		return nil, err
	}
	engine := match.NewEngine(cfg, logger)
	_ = engine.Reload(cmd.Context())
	return engine, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
