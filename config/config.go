package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Session      Session
	Ingest       Ingest
	Quiz         Quiz
	GeminiApiKey string
	// SuperAdminEmail designates the account allowed to approve admin
	// signup requests. Empty disables those endpoints.
	SuperAdminEmail string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Session struct {
	CookieName   string
	MaxAgeDays   int
	SecureCookie bool
}

// Ingest holds upload-policy knobs. RejectOnRowError controls whether a
// single malformed row fails the whole batch; MaxErrorsShown bounds the
// error list returned to the administrator.
type Ingest struct {
	RejectOnRowError bool
	MaxErrorsShown   int
}

// Quiz holds practice-session policy. SecondsPerQuestion sets the total
// countdown budget for self-paced quizzes (questions x seconds).
type Quiz struct {
	SecondsPerQuestion int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SESSION_COOKIE_NAME", "examine_uid")
	viper.SetDefault("SESSION_MAX_AGE_DAYS", 30)
	viper.SetDefault("SESSION_SECURE_COOKIE", false)
	viper.SetDefault("INGEST_REJECT_ON_ROW_ERROR", true)
	viper.SetDefault("INGEST_MAX_ERRORS_SHOWN", 8)
	viper.SetDefault("QUIZ_SECONDS_PER_QUESTION", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Session.CookieName = viper.GetString("SESSION_COOKIE_NAME")
	config.Session.MaxAgeDays = viper.GetInt("SESSION_MAX_AGE_DAYS")
	config.Session.SecureCookie = viper.GetBool("SESSION_SECURE_COOKIE")

	config.Ingest.RejectOnRowError = viper.GetBool("INGEST_REJECT_ON_ROW_ERROR")
	config.Ingest.MaxErrorsShown = viper.GetInt("INGEST_MAX_ERRORS_SHOWN")
	config.Quiz.SecondsPerQuestion = viper.GetInt("QUIZ_SECONDS_PER_QUESTION")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.SuperAdminEmail = viper.GetString("SUPERADMIN_EMAIL")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
