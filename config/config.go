package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Server   Server
	Database Database
	Gemini   Gemini
	Admin    Admin
}

type Server struct {
	Port string
	// PublicBaseURL prefixes shareable result links, e.g. https://fit.example.com
	PublicBaseURL string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Gemini struct {
	ApiKey string
	Model  string
}

type Admin struct {
	Username string
	Password string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SQLITE_PATH", "pofit.db")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("ADMIN_USERNAME", "admin")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, relying on environment")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	var config Config

	config.Env = v.GetString("APP_ENV")
	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.PublicBaseURL = strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/")
	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SQLitePath = v.GetString("DATABASE_SQLITE_PATH")

	config.Gemini.ApiKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")

	config.Admin.Username = v.GetString("ADMIN_USERNAME")
	config.Admin.Password = v.GetString("ADMIN_PASSWORD")

	switch config.Database.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q (want postgres or sqlite)", config.Database.Driver)
	}

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("geminiModel", config.Gemini.Model).
		Bool("geminiConfigured", config.Gemini.ApiKey != "").
		Bool("adminConfigured", config.Admin.Password != "").
		Msg("Config loaded")
	return &config, nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// PostgresDSN builds the connection string for the postgres driver.
func (d Database) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port)
}
