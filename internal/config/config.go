package config

// Config aggregates every configuration concern the client needs. Components
// depend on the narrowest interface that covers them.
type Config interface {
	APIConfig
	StorageConfig
	LogConfig
	AppConfig
}

type mainConfig struct {
	API
	Storage
	Log
	App
}

// New loads configuration from the environment (plus an optional .env file)
// and returns the aggregate view.
func New() Config {
	v := load()
	return mainConfig{
		API:     API{v: v},
		Storage: Storage{v: v},
		Log:     Log{v: v},
		App:     App{v: v},
	}
}
