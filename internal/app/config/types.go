package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App      App
	API      API
	JWT      JWT
	Session  Session
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	MongoDB  AppMongoDB
}

type App struct {
	Env                           string
	Port                          string
	Version                       string
	Timezone                      string
	EndpointPrefix                string
	CorsAllowedOrigins            []string
	MaxRequests                   int
	ShutdownTimeoutInSeconds      int
	RequestTimeoutInSeconds       int
	LoginMaxAttemptsPerMinute     int
	LoginBlockDurationInMinutes   int
	RequestBodyLimitInMegabyte    int
	MinioPreSignedUrlExpiryInHour int
	// PruneCronSpec schedules dropping idle per-device state.
	PruneCronSpec                 string
}

// API describes the external scoring API the BFF proxies.
type API struct {
	BaseUrl           string
	TimeoutInSeconds  int
	DefaultClientType string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Session struct {
	// EncryptionKey is a base64 encoded 32 byte key sealing upstream tokens.
	EncryptionKey string
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	EventsQueue string
}

type AppMongoDB struct {
	PreferencesCollection string
}
