package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,            default=8080"`
	Env           string        `env:"ENV,             default=development"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,       default=24h"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`
	LogLevel      string        `env:"LOG_LEVEL,       default=info"`

	// RevocationBackend selects the token denylist: "memory" for a single
	// instance, "redis" when several instances must share revocations.
	RevocationBackend string `env:"REVOCATION_BACKEND, default=memory"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	// Backend selects where uploads land: "local" disk or "minio".
	Backend   string `env:"STORAGE_BACKEND, default=local"`
	UploadDir string `env:"UPLOAD_DIR,      default=./static/uploads"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET,     default=portfolio-uploads"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
