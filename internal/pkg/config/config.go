package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// ClientOrigins is the allowlist of frontend origins permitted to send
	// credentialed cross-origin requests.
	ClientOrigins []string `env:"CLIENT_ORIGINS, default=http://localhost:5173"`

	Admin   AdminConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	OMDb    OMDbConfig
	YouTube YouTubeConfig
	SMTP    SMTPConfig
}

// AdminConfig is the single environment-configured admin identity. Admins are
// not rows in the users collection; these three values are the whole principal.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Name     string `env:"ADMIN_NAME, default=Movian Admin"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=movian"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
	// TLS must be set for hosted Redis providers that only accept
	// encrypted connections.
	TLS bool `env:"REDIS_TLS, default=false"`
}

type OMDbConfig struct {
	APIKey  string `env:"OMDB_API_KEY"`
	BaseURL string `env:"OMDB_BASE_URL, default=https://www.omdbapi.com"`
}

type YouTubeConfig struct {
	APIKey  string `env:"YOUTUBE_API_KEY"`
	BaseURL string `env:"YOUTUBE_BASE_URL, default=https://www.googleapis.com/youtube/v3"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"EMAIL_FROM"`
	// AppBaseURL is the public frontend URL used to build verification and
	// password-reset links.
	AppBaseURL string `env:"APP_BASE_URL, default=http://localhost:5173"`
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the service runs in a local environment.
// Cookie SameSite/Secure attributes depend on it.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
