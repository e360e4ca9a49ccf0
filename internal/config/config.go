package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Session  SessionConfig  `mapstructure:"session"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Rate     RateConfig     `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// UpstreamConfig points at the external VacTrack REST API. The gateway never
// retries upstream calls; Timeout bounds each one.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
	// RedisURL selects the redis-backed store when set; FilePath selects the
	// file-backed store; otherwise sessions live in process memory.
	RedisURL string `mapstructure:"redis_url"`
	FilePath string `mapstructure:"file_path"`
}

type PaymentConfig struct {
	BankName      string        `mapstructure:"bank_name"`
	AccountNumber string        `mapstructure:"account_number"`
	AccountName   string        `mapstructure:"account_name"`
	QRServiceURL  string        `mapstructure:"qr_service_url"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RateConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// envOverrides are secrets and deployment knobs supplied via environment,
// layered on top of the YAML file.
type envOverrides struct {
	UpstreamBaseURL string `envconfig:"UPSTREAM_BASE_URL"`
	RedisURL        string `envconfig:"REDIS_URL"`
	SMTPPassword    string `envconfig:"SMTP_PASSWORD"`
	Port            int    `envconfig:"PORT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("vactrack", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.UpstreamBaseURL != "" {
		cfg.Upstream.BaseURL = env.UpstreamBaseURL
	}
	if env.RedisURL != "" {
		cfg.Session.RedisURL = env.RedisURL
	}
	if env.SMTPPassword != "" {
		cfg.SMTP.Password = env.SMTPPassword
	}
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.shutdown_timeout", 5*time.Second)
	viper.SetDefault("upstream.base_url", "http://localhost:8080/api")
	viper.SetDefault("upstream.timeout", 15*time.Second)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("session.cookie_name", "vactrack_sid")
	viper.SetDefault("payment.bank_name", "Techcombank")
	viper.SetDefault("payment.account_number", "19036518968011")
	viper.SetDefault("payment.account_name", "CÔNG TY TNHH VACTRACK VIỆT NAM")
	viper.SetDefault("payment.qr_service_url", "https://api.qrserver.com/v1/create-qr-code/")
	viper.SetDefault("payment.poll_interval", 2*time.Second)
	viper.SetDefault("cors.allow_origins", []string{"*"})
	viper.SetDefault("rate_limit.rps", 50.0)
	viper.SetDefault("rate_limit.burst", 100)
}
