package config

// EnvPrefix is the envconfig prefix shared by every BILLPOINT_* variable.
const EnvPrefix = "BILLPOINT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error text).
const (
	EnvAppEnv   = "BILLPOINT_APP_ENV"
	EnvPort     = "BILLPOINT_APP_PORT"
	EnvDBDSN    = "BILLPOINT_DB_DSN"
	EnvDBHost   = "BILLPOINT_DB_HOST"
	EnvDBUser   = "BILLPOINT_DB_USER"
	EnvDBName   = "BILLPOINT_DB_NAME"
	EnvRedisURL = "BILLPOINT_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
