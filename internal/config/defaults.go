package config

const (
	defaultDataDir                 = "~/.local/share/copydesk"
	defaultLogDir                  = "~/.local/share/copydesk/logs"
	defaultLogFormat               = "console"
	defaultLogLevel                = "info"
	defaultCMSRequestTimeout       = 30
	defaultGeneratorBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultGeneratorModel          = "google/gemini-3-flash-preview"
	defaultGeneratorTimeoutSeconds = 60
	defaultNotifyRequestTimeout    = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		CMS: CMS{
			RequestTimeout: defaultCMSRequestTimeout,
		},
		Generator: Generator{
			BaseURL:        defaultGeneratorBaseURL,
			Model:          defaultGeneratorModel,
			TimeoutSeconds: defaultGeneratorTimeoutSeconds,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
