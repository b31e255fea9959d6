package config

const (
	defaultDataDir   = "~/.local/share/vauxly"
	defaultLogDir    = "~/.local/share/vauxly/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Search: Search{
			FuzzyFallback: true,
		},
	}
}
