package config

import (
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medcalc"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                           utils.GetEnvString("APP_ENV", "development"),
			Port:                          utils.GetEnvString("APP_PORT", "8080"),
			Version:                       utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                      utils.GetEnvString("APP_TIMEZONE", "Europe/Moscow"),
			EndpointPrefix:                utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:            splitCSV(utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*")),
			MaxRequests:                   utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:       utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			LoginMaxAttemptsPerMinute:     utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_MINUTE", 5),
			LoginBlockDurationInMinutes:   utils.GetEnvInt("APP_LOGIN_BLOCK_DURATION_IN_MINUTES", 5),
			RequestBodyLimitInMegabyte:    utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			MinioPreSignedUrlExpiryInHour: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_EXPIRY_IN_HOUR", 24),
			PruneCronSpec:                 utils.GetEnvString("APP_PRUNE_CRON_SPEC", "@every 10m"),
		},
		API: API{
			BaseUrl:           strings.TrimRight(utils.GetEnvString("API_BASE_URL", "http://localhost:5000/api"), "/"),
			TimeoutInSeconds:  utils.GetEnvInt("API_TIMEOUT_IN_SECONDS", 30),
			DefaultClientType: utils.GetEnvString("API_DEFAULT_CLIENT_TYPE", constvars.DefaultClientType),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: Session{
			EncryptionKey: utils.GetEnvString("SESSION_ENCRYPTION_KEY", ""),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "medcalc-reports"),
		},
		RabbitMQ: AppRabbitMQ{
			EventsQueue: utils.GetEnvString("APP_RABBITMQ_EVENTS_QUEUE", "medcalc.events"),
		},
		MongoDB: AppMongoDB{
			PreferencesCollection: utils.GetEnvString("APP_MONGODB_PREFERENCES_COLLECTION", "preferences"),
		},
	}
}

func splitCSV(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
