package config

// EnvPrefix namespaces every configuration variable.
const EnvPrefix = "HELIXCRM"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical env var names, shared with tests and deployment docs.
const (
	EnvAppEnv       = "HELIXCRM_APP_ENV"
	EnvLogLevel     = "HELIXCRM_LOG_LEVEL"
	EnvStorePath    = "HELIXCRM_STORE_PATH"
	EnvAPIBaseURL   = "HELIXCRM_API_BASE_URL"
	EnvAPITimeout   = "HELIXCRM_API_TIMEOUT"
	EnvNotifyTTL    = "HELIXCRM_NOTIFY_TTL"
	EnvMockAPIPort  = "HELIXCRM_MOCKAPI_PORT"
)
