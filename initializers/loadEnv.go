package initializers

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBUserName string `mapstructure:"POSTGRES_USER"`
	DBUserPass string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`

	ServerPort   string `mapstructure:"SERVER_PORT"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`

	JwtSecret  string        `mapstructure:"JWT_SECRET"`
	JwtExpires time.Duration `mapstructure:"JWT_EXPIRED_IN"`
	JwtMaxAge  int           `mapstructure:"JWT_MAXAGE"`

	UploadDir string `mapstructure:"UPLOAD_DIR"`

	// Optional integrations; empty values disable the feature.
	RedisAddr    string        `mapstructure:"REDIS_ADDR"`
	RedisTTL     time.Duration `mapstructure:"REDIS_CACHE_TTL"`
	AmqpURL      string        `mapstructure:"AMQP_URL"`
	AmqpExchange string        `mapstructure:"AMQP_EXCHANGE"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigType("env")
	viper.SetConfigName("app")

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("JWT_EXPIRED_IN", "60m")
	viper.SetDefault("JWT_MAXAGE", 60)
	viper.SetDefault("REDIS_CACHE_TTL", "5m")
	viper.SetDefault("AMQP_EXCHANGE", "booknest.orders")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// Running purely off environment variables is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
