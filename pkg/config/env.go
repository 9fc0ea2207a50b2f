package config

// EnvPrefix scopes every recognized environment variable.
const EnvPrefix = "MYTHRILMERCH"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "MYTHRILMERCH_DB_DSN"
	EnvDBHost = "MYTHRILMERCH_DB_HOST"
	EnvDBUser = "MYTHRILMERCH_DB_USER"
	EnvDBName = "MYTHRILMERCH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
