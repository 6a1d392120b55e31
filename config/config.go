package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
	Contacts ContactsConfig
	Seed     SeedConfig
	LogLevel string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
}

type MailConfig struct {
	SendGridKey string
	FromEmail   string
	Inbox       string
	QueueSize   int
	SendTimeout time.Duration
}

type ContactsConfig struct {
	// ListRequireAdmin gates GET /contacts behind the admin role. The
	// reference behavior leaves the route open, so it defaults to false.
	ListRequireAdmin bool
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	UserEmail     string
	UserPassword  string
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("DB_PATH", "database.db")
	viper.SetDefault("MAIL_QUEUE_SIZE", 64)
	viper.SetDefault("MAIL_SEND_TIMEOUT", 10*time.Second)
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Database.Path = viper.GetString("DB_PATH")

	cfg.JWT.Secret = viper.GetString("JWT_SECRET")

	cfg.Mail.SendGridKey = viper.GetString("SENDGRID_API_KEY")
	cfg.Mail.FromEmail = viper.GetString("MAIL_FROM")
	cfg.Mail.Inbox = viper.GetString("CONTACT_INBOX")
	cfg.Mail.QueueSize = viper.GetInt("MAIL_QUEUE_SIZE")
	cfg.Mail.SendTimeout = viper.GetDuration("MAIL_SEND_TIMEOUT")

	cfg.Contacts.ListRequireAdmin = viper.GetBool("CONTACTS_LIST_REQUIRE_ADMIN")

	cfg.Seed.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.Seed.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.Seed.UserEmail = viper.GetString("USER_EMAIL")
	cfg.Seed.UserPassword = viper.GetString("USER_PASSWORD")

	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}
