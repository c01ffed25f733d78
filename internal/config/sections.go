package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// keyReplacer maps "api.base_url" style keys to SCHOOLCTL_API_BASE_URL
// environment variables.
var keyReplacer = strings.NewReplacer(".", "_")

// APIConfig covers the HTTP transport.
type APIConfig interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
}

// StorageConfig covers the persisted session record.
type StorageConfig interface {
	GetStorageBackend() string // "file" or "sqlite"
	GetStoragePath() string
}

// LogConfig covers logging.
type LogConfig interface {
	GetLogLevel() string
}

// AppConfig covers presentation concerns.
type AppConfig interface {
	GetAppName() string
}

type API struct{ v *viper.Viper }

var _ APIConfig = API{}

func (a API) GetBaseURL() string {
	return strings.TrimSuffix(a.v.GetString("api.base_url"), "/")
}

func (a API) GetRequestTimeout() time.Duration {
	return a.v.GetDuration("api.timeout")
}

type Storage struct{ v *viper.Viper }

var _ StorageConfig = Storage{}

func (s Storage) GetStorageBackend() string {
	return s.v.GetString("storage.backend")
}

func (s Storage) GetStoragePath() string {
	return s.v.GetString("storage.path")
}

type Log struct{ v *viper.Viper }

var _ LogConfig = Log{}

func (l Log) GetLogLevel() string {
	return l.v.GetString("log.level")
}

type App struct{ v *viper.Viper }

var _ AppConfig = App{}

func (a App) GetAppName() string {
	return a.v.GetString("app.name")
}
