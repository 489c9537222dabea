package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Gemini     Gemini
	Generation Generation
}

type Server struct {
	Port             string
	GinMode          string
	CORSAllowOrigins []string
}

type Gemini struct {
	ApiKey      string
	Model       string
	Temperature float32
}

// Generation bounds a single quiz generation request.
type Generation struct {
	Timeout           time.Duration
	MaxQuestions      int
	StrictAnswerCheck bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("QUIZ_MAX_QUESTIONS", 50)
	v.SetDefault("QUIZ_STRICT_ANSWER_CHECK", false)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	config := fromViper(v)

	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return config, nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	for _, origin := range strings.Split(v.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.Server.CORSAllowOrigins = append(config.Server.CORSAllowOrigins, origin)
		}
	}

	config.Gemini.ApiKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")
	config.Gemini.Temperature = float32(v.GetFloat64("GEMINI_TEMPERATURE"))

	config.Generation.Timeout = v.GetDuration("GENERATION_TIMEOUT")
	if config.Generation.Timeout <= 0 {
		log.Warn().Str("value", v.GetString("GENERATION_TIMEOUT")).Msg("Invalid GENERATION_TIMEOUT, falling back to 60s")
		config.Generation.Timeout = 60 * time.Second
	}
	config.Generation.MaxQuestions = v.GetInt("QUIZ_MAX_QUESTIONS")
	config.Generation.StrictAnswerCheck = v.GetBool("QUIZ_STRICT_ANSWER_CHECK")

	return &config
}

// Redacted returns a copy that is safe to log.
func (c Config) Redacted() Config {
	if c.Gemini.ApiKey != "" {
		c.Gemini.ApiKey = "***"
	}
	return c
}
