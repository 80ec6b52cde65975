package config

// EnvPrefix is handed to envconfig; every variable below carries it explicitly.
const EnvPrefix = "CARTSTORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	SubmitterStatic = "static"
	SubmitterHTTP   = "http"
	SubmitterQueue  = "queue"
)

const (
	EnvAppEnv       = "CARTSTORE_APP_ENV"
	EnvPort         = "CARTSTORE_APP_PORT"
	EnvLogLevel     = "CARTSTORE_LOG_LEVEL"
	EnvLogWarnStack = "CARTSTORE_LOG_WARN_STACK"
	EnvCORSOrigins  = "CARTSTORE_CORS_ORIGINS"

	EnvOrderSubmitter     = "CARTSTORE_ORDER_SUBMITTER"
	EnvOrderEndpoint      = "CARTSTORE_ORDER_ENDPOINT"
	EnvOrderTimeout       = "CARTSTORE_ORDER_TIMEOUT"
	EnvOrderStaticMessage = "CARTSTORE_ORDER_STATIC_MESSAGE"
	EnvOrderQueueKey      = "CARTSTORE_ORDER_QUEUE_KEY"

	EnvRedisURL  = "CARTSTORE_REDIS_URL"
	EnvRedisAddr = "CARTSTORE_REDIS_ADDR"
)
