package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "RESUMEHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (error messages,
// tests, deploy docs).
const (
	EnvAppEnv     = "RESUMEHUB_APP_ENV"
	EnvPort       = "RESUMEHUB_APP_PORT"
	EnvDBDSN      = "RESUMEHUB_DB_DSN"
	EnvDBHost     = "RESUMEHUB_DB_HOST"
	EnvDBUser     = "RESUMEHUB_DB_USER"
	EnvDBName     = "RESUMEHUB_DB_NAME"
	EnvRedisURL   = "RESUMEHUB_REDIS_URL"
	EnvJWTSecret  = "RESUMEHUB_JWT_SECRET"
	EnvJWTIssuer  = "RESUMEHUB_JWT_ISSUER"
	EnvJWTExpMins = "RESUMEHUB_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
