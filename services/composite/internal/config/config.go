package config

import (
	"fmt"

	pkgconfig "github.com/rickragav/ragav-ecommerce-sass-application/pkg/config"
	pkgvalidator "github.com/rickragav/ragav-ecommerce-sass-application/pkg/validator"
)

// Config holds all configuration for the composite service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"COMPOSITE_HTTP_PORT" envDefault:"7000" validate:"gte=1,lte=65535"`

	// Upstream services
	ProductServiceURL string `env:"PRODUCT_SERVICE_URL" envDefault:"http://localhost:7001" validate:"required,url"`
	ReviewServiceURL  string `env:"REVIEW_SERVICE_URL" envDefault:"http://localhost:7003" validate:"required,url"`

	// HTTP client
	ClientTimeoutSeconds int `env:"HTTP_CLIENT_TIMEOUT_SECONDS" envDefault:"10"`
	ClientMaxRetries     int `env:"HTTP_CLIENT_MAX_RETRIES" envDefault:"0"`

	// Circuit breaker (opt-in)
	CBEnabled      bool    `env:"CB_ENABLED" envDefault:"false"`
	CBMaxRequests  uint32  `env:"CB_MAX_REQUESTS" envDefault:"3"`
	CBInterval     int     `env:"CB_INTERVAL_SECONDS" envDefault:"60"`
	CBTimeout      int     `env:"CB_TIMEOUT_SECONDS" envDefault:"30"`
	CBFailureRatio float64 `env:"CB_FAILURE_RATIO" envDefault:"0.6"`
	CBMinRequests  uint32  `env:"CB_MIN_REQUESTS" envDefault:"5"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0" validate:"gte=0,lte=1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load composite config: %w", err)
	}
	if err := pkgvalidator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate composite config: %w", err)
	}
	return cfg, nil
}
