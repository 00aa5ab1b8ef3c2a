package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env
// vars and optionally a .env file; env vars win).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
	OTP   OTPConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// StoreConfig selects and configures the state backend.
// Driver: "memory" (default), "bolt" or "postgres".
type StoreConfig struct {
	Driver      string
	BoltPath    string // bolt: file path
	DatabaseURL string // postgres: full connection string
}

// OTPConfig mock verification flow settings. The delays simulate SMS
// latency; set them to zero in tests.
type OTPConfig struct {
	SendDelay   time.Duration
	VerifyDelay time.Duration
	CountryCode string // prefixed to stored numbers in wa.me links
}

// Load reads the configuration from environment variables (and optionally
// a .env file). Expected names: APP_ENV, HTTP_PORT, JWT_SECRET, STORE_DRIVER...
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vendorconnect"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "vendorconnect"),
		},
		Store: StoreConfig{
			Driver:      getString(v, "STORE_DRIVER", "memory"),
			BoltPath:    getString(v, "STORE_BOLT_PATH", "vendorconnect.db"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		OTP: OTPConfig{
			SendDelay:   time.Duration(getInt(v, "OTP_SEND_DELAY_MS", 1500)) * time.Millisecond,
			VerifyDelay: time.Duration(getInt(v, "OTP_VERIFY_DELAY_MS", 1000)) * time.Millisecond,
			CountryCode: getString(v, "OTP_COUNTRY_CODE", "91"),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
