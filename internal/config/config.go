package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig `ignored:"true"`
	Upload   UploadConfig
	Auth     AuthConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// StorageConfig holds the object-store settings. It is not resolved by
// envconfig: hosting platforms disagree on variable naming, so each
// setting is resolved once at startup from an ordered chain of
// candidate environment variables (see resolveStorage).
type StorageConfig struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type UploadConfig struct {
	SignedURLTTL       time.Duration `envconfig:"UPLOAD_SIGNED_URL_TTL" default:"1h"`
	DiagnosticURLTTL   time.Duration `envconfig:"UPLOAD_DIAGNOSTIC_URL_TTL" default:"5m"`
	OrderNumberRetries int           `envconfig:"ORDER_NUMBER_RETRIES" default:"3"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" required:"true"`
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" required:"true"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"upload-prints"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"PRINT_ORDERS"`
}

// storageChains lists, per setting, the environment variables tried in
// order. The first scheme is this service's own naming; the second is
// the bare naming some bucket providers inject.
var storageChains = []struct {
	target     string
	candidates []string
	fallback   string
	required   bool
}{
	{"Endpoint", []string{"STORAGE_ENDPOINT", "ENDPOINT"}, "", true},
	{"Bucket", []string{"STORAGE_BUCKET", "BUCKET"}, "", true},
	{"Region", []string{"STORAGE_REGION", "REGION"}, "us-west-1", false},
	{"AccessKey", []string{"STORAGE_ACCESS_KEY", "ACCESS_KEY_ID"}, "", true},
	{"SecretKey", []string{"STORAGE_SECRET_KEY", "SECRET_ACCESS_KEY"}, "", true},
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	storage, err := resolveStorage(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	cfg.Storage = *storage

	return &cfg, nil
}

// resolveStorage walks the candidate chains once and fails loudly on
// any missing required setting so a misconfigured store never silently
// produces unusable signed URLs later.
func resolveStorage(lookup func(string) (string, bool)) (*StorageConfig, error) {
	values := make(map[string]string, len(storageChains))
	var missing []string

	for _, chain := range storageChains {
		resolved := chain.fallback
		for _, name := range chain.candidates {
			if v, ok := lookup(name); ok && v != "" {
				resolved = v
				break
			}
		}
		if resolved == "" && chain.required {
			missing = append(missing, strings.Join(chain.candidates, "|"))
			continue
		}
		values[chain.target] = resolved
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("storage configuration incomplete, missing: %s", strings.Join(missing, ", "))
	}

	useSSL := false
	if v, ok := lookup("STORAGE_USE_SSL"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STORAGE_USE_SSL value %q: %w", v, err)
		}
		useSSL = parsed
	}

	return &StorageConfig{
		Endpoint:  values["Endpoint"],
		Bucket:    values["Bucket"],
		Region:    values["Region"],
		AccessKey: values["AccessKey"],
		SecretKey: values["SecretKey"],
		UseSSL:    useSSL,
	}, nil
}
