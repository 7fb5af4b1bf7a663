package llm

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskBrief     TaskType = "brief"
	TaskTranslate TaskType = "translate"
	TaskFeedback  TaskType = "feedback"
	TaskReview    TaskType = "review"
	TaskChallenge TaskType = "challenge"
)

// Tasks lists every task type in a stable order.
var Tasks = []TaskType{TaskBrief, TaskTranslate, TaskFeedback, TaskReview, TaskChallenge}

// Provider selects the backend that serves Generate calls.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task LLM parameters. Zero TopP or MaxTokens leaves
// the backend default in place.
type TaskConfig struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider   Provider
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultModel is the model used for p when llm.model is not set. The
// Ollama default is a vision model since feedback sends images.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderOllama:
		return "llava"
	default:
		return "gemini-2.5-flash"
	}
}

// DefaultConfig returns an LLMConfig with sensible defaults: Gemini, no
// retries and no local deadline. A TimeoutMs of 0 leaves the call bounded
// only by the caller's context.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderGemini,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      DefaultModel(ProviderGemini),
		TimeoutMs:  0,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskBrief:     {Temperature: 1.0, TopP: 0.95},
			TaskTranslate: {Temperature: 0.2},
			TaskFeedback:  {Temperature: 0.8, TopP: 0.95},
			TaskReview:    {Temperature: 0.7},
			TaskChallenge: {Temperature: 0.5},
		},
	}
}

// SetDefaults registers the llm.* keys on v so that environment overrides
// resolve through AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("llm.provider", string(d.Provider))
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.log_calls", d.LogCalls)
	v.SetDefault("llm.endpoint", d.Endpoint)
	// Empty so the model follows the provider.
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout_ms", d.TimeoutMs)
	v.SetDefault("llm.max_retries", d.MaxRetries)
	for _, task := range Tasks {
		v.SetDefault("llm.tasks."+string(task)+".timeout_ms", 0)
	}
}

// LoadConfig reads the llm.* keys from v, falling back to defaults for
// unset or invalid values. The API key falls back to GEMINI_API_KEY and
// then API_KEY.
func LoadConfig(v *viper.Viper) LLMConfig {
	cfg := DefaultConfig()

	if p := strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))); p != "" {
		cfg.Provider = Provider(p)
	}
	cfg.APIKey = v.GetString("llm.api_key")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	cfg.LogCalls = v.GetBool("llm.log_calls")
	if s := v.GetString("llm.endpoint"); s != "" {
		cfg.Endpoint = strings.TrimRight(s, "/")
	}
	cfg.Model = DefaultModel(cfg.Provider)
	if s := strings.TrimSpace(v.GetString("llm.model")); s != "" {
		cfg.Model = s
	}
	if n := v.GetInt("llm.timeout_ms"); n > 0 {
		cfg.TimeoutMs = n
	}
	if n := v.GetInt("llm.max_retries"); n >= 0 {
		cfg.MaxRetries = n
	}

	for _, task := range Tasks {
		n := v.GetInt("llm.tasks." + string(task) + ".timeout_ms")
		if n <= 0 {
			continue
		}
		tc := cfg.Tasks[task]
		tc.TimeoutMs = n
		cfg.Tasks[task] = tc
	}

	return cfg
}

// Validate reports configuration that cannot produce a working client.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderOllama:
	default:
		return ErrUnknownProvider
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type in
// milliseconds: the task-specific value if set, otherwise the global one.
// 0 means no local deadline.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
