package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Insight"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"insight"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret enables HS256 bearer authentication on the API when set.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Deliverables struct {
		DueSoonWindow time.Duration `envconfig:"DELIVERABLE_DUE_SOON_WINDOW" default:"168h"`
	}

	NATS struct {
		URL string `envconfig:"NATS_URL"`
	}

	Reports struct {
		S3Bucket   string `envconfig:"REPORT_S3_BUCKET"`
		S3Prefix   string `envconfig:"REPORT_S3_PREFIX" default:"reports"`
		S3Region   string `envconfig:"REPORT_S3_REGION" default:"us-east-1"`
		S3Endpoint string `envconfig:"REPORT_S3_ENDPOINT"`
	}

	Client struct {
		BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
		Token   string        `envconfig:"API_TOKEN"`
		Timeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
	}
}

func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     c.DB.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.DB.SSLMode),
	}

	return u.String()
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
