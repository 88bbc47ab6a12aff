package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	ServerName  string         `mapstructure:"server_name" yaml:"server_name"`
	Environment string         `mapstructure:"environment" yaml:"environment"`
	Port        int            `mapstructure:"port" yaml:"port"`
	BaseURL     string         `mapstructure:"base_url" yaml:"base_url"`
	Postgres    PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Redis       RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Auth        AuthConfig     `mapstructure:"auth" yaml:"auth"`
	LLM         LLMConfig      `mapstructure:"llm" yaml:"llm"`
	Email       EmailConfig    `mapstructure:"email" yaml:"email"`
	Admin       AdminConfig    `mapstructure:"admin" yaml:"admin"`
}

type PostgresConfig struct {
	Address  string        `mapstructure:"address" yaml:"address"`
	Port     int           `mapstructure:"port" yaml:"port"`
	User     string        `mapstructure:"user" yaml:"user"`
	Password string        `mapstructure:"password" yaml:"password"`
	DBName   string        `mapstructure:"db_name" yaml:"db_name"`
	MaxIdle  int           `mapstructure:"max_idle" yaml:"max_idle"`
	MaxOpen  int           `mapstructure:"max_open" yaml:"max_open"`
	MaxLife  time.Duration `mapstructure:"max_life" yaml:"max_life"`
}

type RedisConfig struct {
	Address      string `mapstructure:"address" yaml:"address"`
	Port         int    `mapstructure:"port" yaml:"port"`
	Password     string `mapstructure:"password" yaml:"password"`
	Database     int    `mapstructure:"database" yaml:"database"`
	RateLimitQPS int    `mapstructure:"rate_limit_qps" yaml:"rate_limit_qps"`
}

type AuthConfig struct {
	JwtSecret       string `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	ExpireAccessH   int    `mapstructure:"expire_access_h" yaml:"expire_access_h"`
	ExpireApprovalH int    `mapstructure:"expire_approval_h" yaml:"expire_approval_h"`
}

type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	Model   string        `mapstructure:"model" yaml:"model"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type EmailConfig struct {
	// Provider selects the delivery backend: "sendgrid" or "smtp".
	Provider  string         `mapstructure:"provider" yaml:"provider"`
	FromEmail string         `mapstructure:"from_email" yaml:"from_email"`
	FromName  string         `mapstructure:"from_name" yaml:"from_name"`
	Timeout   time.Duration  `mapstructure:"timeout" yaml:"timeout"`
	SendGrid  SendGridConfig `mapstructure:"sendgrid" yaml:"sendgrid"`
	SMTP      SMTPConfig     `mapstructure:"smtp" yaml:"smtp"`
}

type SendGridConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

type AdminConfig struct {
	Email string `mapstructure:"email" yaml:"email"`
}

func LoadConfig() (*AppConfig, error) {
	var config AppConfig

	viper.SetConfigFile("config/config.yml")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return &config, err
	}
	if err := viper.Unmarshal(&config); err != nil {
		return &config, err
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server_name", "modpack-assistant")
	viper.SetDefault("environment", "development")
	viper.SetDefault("port", 8080)
	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("auth.expire_access_h", 24)
	viper.SetDefault("auth.expire_approval_h", 72)
	viper.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("email.provider", "sendgrid")
	viper.SetDefault("email.from_name", "Modpack Assistant")
	viper.SetDefault("email.timeout", 10*time.Second)
	viper.SetDefault("redis.rate_limit_qps", 5)
}
