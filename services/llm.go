package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"studenttrip/config"
	"studenttrip/logger"
	"studenttrip/metrics"
)

// ErrAIUnavailable means no generator is configured or the call budget is
// spent. Callers fall back to static content.
var ErrAIUnavailable = errors.New("text generation unavailable")

// TextGenerator turns a prompt into text. Any error means "use the fallback".
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type unavailable struct{ reason string }

func (u unavailable) Generate(context.Context, string) (string, error) {
	return "", errors.Wrap(ErrAIUnavailable, u.reason)
}

// limited caps the call rate to the provider and records latency.
type limited struct {
	next     TextGenerator
	provider string
	limiter  *rate.Limiter
}

func (l *limited) Generate(ctx context.Context, prompt string) (string, error) {
	if l.limiter != nil && !l.limiter.Allow() {
		return "", errors.Wrap(ErrAIUnavailable, "rate limit reached")
	}

	start := time.Now()
	text, err := l.next.Generate(ctx, prompt)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.LLMRequestDuration.WithLabelValues(l.provider, outcome).Observe(time.Since(start).Seconds())
	return text, err
}

// WithRateLimit wraps g so that at most perMinute calls reach the provider.
// perMinute <= 0 disables the limit.
func WithRateLimit(g TextGenerator, provider string, perMinute int) TextGenerator {
	l := &limited{next: g, provider: provider}
	if perMinute > 0 {
		l.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return l
}

// NewTextGenerator picks the provider from cfg. A provider that is not
// configured yields a generator that always reports ErrAIUnavailable.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) TextGenerator {
	log := logger.L()

	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GoogleAPIKey == "" {
			log.Warn("GOOGLE_API_KEY not set, plan sections will use fallback text")
			return unavailable{reason: "gemini api key not configured"}
		}
		client, err := NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("Gemini init failed, plan sections will use fallback text", zap.Error(err))
			return unavailable{reason: "gemini init failed"}
		}
		log.Info("AI (Gemini) initialized", zap.String("model", cfg.GeminiModel))
		return WithRateLimit(client, config.ProviderGemini, cfg.RatePerMinute)

	case config.ProviderHuggingFace:
		if cfg.HuggingFaceKey == "" {
			log.Warn("HUGGINGFACE_API_KEY not set, plan sections will use fallback text")
			return unavailable{reason: "huggingface api key not configured"}
		}
		log.Info("AI (HuggingFace) initialized", zap.String("model", cfg.HuggingFaceModel))
		return WithRateLimit(NewHuggingFaceClient(cfg.HuggingFaceKey, cfg.HuggingFaceModel, cfg.Timeout), config.ProviderHuggingFace, cfg.RatePerMinute)
	}

	log.Info("AI disabled, plan sections will use fallback text")
	return unavailable{reason: "no provider configured"}
}

// Enabled reports whether g can reach a provider at all.
func Enabled(g TextGenerator) bool {
	_, off := g.(unavailable)
	return g != nil && !off
}
