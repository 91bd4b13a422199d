package config

// Config holds runtime settings for the credstore demo CLI.
//
// Fields:
//   - LogLevel: minimum level for structured logs ("debug", "info", "warn", "error").
//   - LogFormat: slog handler selection ("text" or "json").
//   - PromptLabel: label shown in the REPL prompt.
//
// The seed accounts are intentionally not configurable; they are fixed
// constants of the credential store.
type Config struct {
	LogLevel    string
	LogFormat   string
	PromptLabel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.PromptLabel = "credstore"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
