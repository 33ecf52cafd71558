package config

import (
	"time"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
)

// Namespace prefixes every environment variable, e.g. GEOATTEND_DB_HOST.
const Namespace = "GEOATTEND"

type Config struct {
	Web struct {
		Port            string        `conf:"default:8080"`
		ReadTimeout     time.Duration `conf:"default:10s"`
		WriteTimeout    time.Duration `conf:"default:30s"`
		IdleTimeout     time.Duration `conf:"default:60s"`
		ShutdownTimeout time.Duration `conf:"default:10s"`
	}
	DB struct {
		Host        string `conf:"default:localhost"`
		User        string `conf:"default:postgres"`
		Password    string `conf:"default:postgres,noprint"`
		Name        string `conf:"default:geoattend"`
		Port        string `conf:"default:5432"`
		SSLMode     string `conf:"default:disable"`
		MaxRetries  int    `conf:"default:5"`
		AutoMigrate bool   `conf:"default:false"`
	}
	Redis struct {
		Addr       string `conf:"default:localhost:6379"`
		MaxRetries int    `conf:"default:5"`
	}
	Kafka struct {
		Broker       string        `conf:"default:localhost:9092"`
		PollInterval time.Duration `conf:"default:2s"`
		BatchSize    int           `conf:"default:50"`
	}
	Auth struct {
		JWTSecret string `conf:"noprint"`
	}
	Attendance struct {
		DependencyTimeout time.Duration `conf:"default:5s"`
	}
	Evidence struct {
		Dir          string `conf:"default:./media/evidence"`
		BaseURL      string `conf:"default:/files/evidence"`
		MaxBytes     int64  `conf:"default:5242880"`
		LinkOptional bool   `conf:"default:true"`
	}
	RBAC struct {
		Model  string `conf:"default:./config/rbac_model.conf"`
		Policy string `conf:"default:./config/rbac_policy.csv"`
	}
	RateLimit struct {
		RPS     float64 `conf:"default:5"`
		Burst   int     `conf:"default:10"`
		IPRPS   float64 `conf:"default:50"`
		IPBurst int     `conf:"default:100"`
	}
}

// Load parses command line flags and GEOATTEND_* environment variables
// over the defaults above. conf.ErrHelpWanted is returned untouched so
// callers can print usage.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := conf.Parse(args, Namespace, &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return cfg, err
		}
		return cfg, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

func Usage(cfg *Config) string {
	usage, err := conf.Usage(Namespace, cfg)
	if err != nil {
		return err.Error()
	}
	return usage
}

// String renders the effective configuration with secrets omitted.
func String(cfg *Config) string {
	out, err := conf.String(cfg)
	if err != nil {
		return err.Error()
	}
	return out
}
