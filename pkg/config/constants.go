package config

const (
	EnvPrefix = "drishti"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv        = "DRISHTI_APP_ENV"
	EnvPort          = "DRISHTI_APP_PORT"
	EnvDBDSN         = "DRISHTI_DB_DSN"
	EnvDBHost        = "DRISHTI_DB_HOST"
	EnvDBUser        = "DRISHTI_DB_USER"
	EnvDBName        = "DRISHTI_DB_NAME"
	EnvAdminUsername = "DRISHTI_ADMIN_USERNAME"
	EnvAdminPassword = "DRISHTI_ADMIN_PASSWORD"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
