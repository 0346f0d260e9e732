package config

import (
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/member-signup/cognito"
	"github.com/International-Combat-Archery-Alliance/member-signup/dynamo"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/nyaruka/phonenumbers"
)

type Environment string

const (
	LOCAL Environment = "LOCAL"
	PROD  Environment = "PROD"
)

type SessionStoreKind string

const (
	MEMORY_STORE SessionStoreKind = "memory"
	DYNAMO_STORE SessionStoreKind = "dynamo"
)

// MinInFlightLease is the longest a Cognito call plus the two store writes
// that settle it can take. A shorter lease would let a second request for
// the session start while the first is still waiting on Cognito.
const MinInFlightLease = cognito.CallTimeout + 2*dynamo.RequestTimeout

type Config struct {
	// Server
	Host string      `env:"HOST" env-default:"0.0.0.0"`
	Port string      `env:"PORT" env-default:"8080"`
	Env  Environment `env:"ENV" env-default:"LOCAL"`

	// Cognito
	CognitoClientID string `env:"COGNITO_CLIENT_ID"`
	// SSM parameter holding the app client secret. Empty for clients
	// without a secret.
	CognitoClientSecretParam string `env:"COGNITO_CLIENT_SECRET_PARAM"`

	// Sessions
	SessionStore   SessionStoreKind `env:"SESSION_STORE" env-default:"memory"`
	DynamoTable    string           `env:"DYNAMO_TABLE" env-default:"MemberSignup"`
	DynamoEndpoint string           `env:"DYNAMO_ENDPOINT"`
	SessionTTL     time.Duration    `env:"SESSION_TTL" env-default:"24h"`
	InFlightLease  time.Duration    `env:"IN_FLIGHT_LEASE" env-default:"30s"`

	// Sign up
	PhoneRegion    string `env:"PHONE_REGION" env-default:"US"`
	PasswordLength int    `env:"PASSWORD_LENGTH" env-default:"16"`

	// Email
	EmailFrom string `env:"EMAIL_FROM" env-default:"ICAA <info@icaa.world>"`

	// CORS, only applied in PROD
	CorsAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"https://icaa.world" env-separator:","`

	// Tracing, disabled when empty
	OtlpEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config from env: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Env {
	case LOCAL, PROD:
	default:
		return fmt.Errorf("ENV must be LOCAL or PROD, got %q", c.Env)
	}

	switch c.SessionStore {
	case MEMORY_STORE, DYNAMO_STORE:
	default:
		return fmt.Errorf("SESSION_STORE must be memory or dynamo, got %q", c.SessionStore)
	}

	if c.CognitoClientID == "" {
		return fmt.Errorf("COGNITO_CLIENT_ID is required")
	}

	if c.PasswordLength < 8 {
		return fmt.Errorf("PASSWORD_LENGTH must be at least 8, got %d", c.PasswordLength)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.InFlightLease <= MinInFlightLease {
		return fmt.Errorf("IN_FLIGHT_LEASE must be longer than %s, got %s", MinInFlightLease, c.InFlightLease)
	}

	if phonenumbers.GetCountryCodeForRegion(c.PhoneRegion) == 0 {
		return fmt.Errorf("PHONE_REGION must be a known region code, got %q", c.PhoneRegion)
	}

	return nil
}
