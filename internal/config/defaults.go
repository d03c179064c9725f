package config

const (
	defaultCorpusPath               = "~/.local/share/umascan/data/all_training_events.json"
	defaultAliasPath                = "~/.config/umascan/aliases.json"
	defaultHistoryPath              = "~/.local/share/umascan/history.db"
	defaultLogDir                   = "~/.local/share/umascan/logs"
	defaultLogFormat                = "console"
	defaultLogLevel                 = "info"
	defaultMatchThreshold           = 85
	defaultTokenCorrectionThreshold = 80
	defaultMaxCandidates            = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Corpus: Corpus{
			Path:      defaultCorpusPath,
			AliasPath: defaultAliasPath,
		},
		Matching: Matching{
			MatchThreshold:           defaultMatchThreshold,
			TokenCorrectionThreshold: defaultTokenCorrectionThreshold,
			MaxCandidates:            defaultMaxCandidates,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Dir:    defaultLogDir,
		},
	}
}
