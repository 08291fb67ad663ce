package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
	ProviderNone        = "none"
)

type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string
	LogLevel     string
	PlanTTL      time.Duration
	LLM          LLMConfig
}

type LLMConfig struct {
	Provider         string
	GoogleAPIKey     string
	GeminiModel      string
	HuggingFaceKey   string
	HuggingFaceModel string
	Timeout          time.Duration
	RatePerMinute    int
}

var defaultOrigins = []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:8501"}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error; production sets variables directly.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("frontend_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("plan_ttl", "24h")

	v.SetDefault("llm_provider", ProviderGemini)
	v.SetDefault("google_api_key", "")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("huggingface_api_key", "")
	v.SetDefault("hf_model", "mistralai/Mistral-7B-Instruct-v0.3")
	v.SetDefault("llm_timeout", "60s")
	v.SetDefault("llm_rate_per_minute", 30)
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:         v.GetString("port"),
		GinMode:      v.GetString("gin_mode"),
		FrontendURLs: allowedOrigins(v.GetString("frontend_url")),
		LogLevel:     strings.ToLower(v.GetString("log_level")),
		PlanTTL:      v.GetDuration("plan_ttl"),
		LLM: LLMConfig{
			Provider:         strings.ToLower(strings.TrimSpace(v.GetString("llm_provider"))),
			GoogleAPIKey:     v.GetString("google_api_key"),
			GeminiModel:      v.GetString("gemini_model"),
			HuggingFaceKey:   v.GetString("huggingface_api_key"),
			HuggingFaceModel: v.GetString("hf_model"),
			Timeout:          v.GetDuration("llm_timeout"),
			RatePerMinute:    v.GetInt("llm_rate_per_minute"),
		},
	}

	if cfg.PlanTTL <= 0 {
		cfg.PlanTTL = 24 * time.Hour
	}
	if cfg.LLM.Timeout <= 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.RatePerMinute < 0 {
		return Config{}, fmt.Errorf("LLM_RATE_PER_MINUTE must not be negative, got %d", cfg.LLM.RatePerMinute)
	}
	switch cfg.LLM.Provider {
	case ProviderGemini, ProviderHuggingFace, ProviderNone:
	default:
		cfg.LLM.Provider = ProviderNone
	}
	return cfg, nil
}

func allowedOrigins(frontendURLs string) []string {
	origins := append([]string{}, defaultOrigins...)
	for _, u := range strings.Split(frontendURLs, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}
