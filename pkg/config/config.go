package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	API      APIConfig
	Password PasswordConfig
	Notify   NotifyConfig
	MockAPI  MockAPIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HELIXCRM_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"HELIXCRM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HELIXCRM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig locates the durable key-value store backing theme and session state.
type StoreConfig struct {
	Path string `envconfig:"HELIXCRM_STORE_PATH" default:"helixcrm.db"`
}

// APIConfig points the client at the external CRM backend.
type APIConfig struct {
	BaseURL string        `envconfig:"HELIXCRM_API_BASE_URL" default:"http://localhost:8084"`
	Timeout time.Duration `envconfig:"HELIXCRM_API_TIMEOUT" default:"10s"`

	// SimulatedLatency stands in for network latency on employee create/update
	// flows that have no backing endpoint yet.
	SimulatedLatency time.Duration `envconfig:"HELIXCRM_API_SIMULATED_LATENCY" default:"400ms"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HELIXCRM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HELIXCRM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HELIXCRM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HELIXCRM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HELIXCRM_ARGON_KEY_LEN" default:"32"`
}

// NotifyConfig controls how long surfaced notifications stay visible.
type NotifyConfig struct {
	TTL time.Duration `envconfig:"HELIXCRM_NOTIFY_TTL" default:"5s"`
}

// MockAPIConfig configures the development stub of the external backend.
type MockAPIConfig struct {
	Port           string        `envconfig:"HELIXCRM_MOCKAPI_PORT" default:"8084"`
	AllowedOrigins []string      `envconfig:"HELIXCRM_MOCKAPI_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	SessionTTL     time.Duration `envconfig:"HELIXCRM_MOCKAPI_SESSION_TTL" default:"24h"`
	RememberTTL    time.Duration `envconfig:"HELIXCRM_MOCKAPI_REMEMBER_TTL" default:"720h"`
}
