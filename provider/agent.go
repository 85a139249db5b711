package provider

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/kusandriadi/agentpick-go"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Common errors
var (
	ErrProtocolMismatch = errors.New("agentpick: provider does not speak this protocol")
	ErrMissingAPIKey    = errors.New("agentpick: no API key configured")
	ErrInvalidBaseURL   = errors.New("agentpick: invalid base URL")
)

// Agent is a provider and model pairing for one tier.
type Agent struct {
	Provider    agentpick.ProviderName // Provider key (e.g., "openai")
	DisplayName string                 // Display name (e.g., "OpenAI")
	Tier        agentpick.Tier         // Tier the model was selected for
	Model       string                 // Model ID (e.g., "gpt-4o")
	Protocol    Protocol               // Wire protocol of the provider
	BaseURL     string                 // Custom or provider base URL (empty = SDK default)
	apiKey      string
}

type config struct {
	apiKey  string
	baseURL string
	logger  agentpick.Logger
}

// Option configures Resolve.
type Option func(*config)

// WithAPIKey sets the API key.
// If unset, the provider's environment variable is read.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the provider's base URL (for proxies).
// The URL must be http(s) and must not point to localhost or a private address.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithLogger sets a structured logger.
// Pass slog.Default() for standard logging, or nil to disable (default).
func WithLogger(logger agentpick.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Resolve selects the default model for a provider key at the given tier and
// returns it together with the provider's client settings.
// Registry errors are returned unchanged.
func Resolve(key string, tier agentpick.Tier, opts ...Option) (*Agent, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	agent, err := resolve(key, tier, cfg)
	if err != nil {
		if cfg.logger != nil {
			cfg.logger.Error("agent resolution failed",
				"provider", key,
				"tier", tier,
				"error", err,
			)
		}
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.Info("agent resolved",
			"provider", agent.DisplayName,
			"tier", agent.Tier,
			"model", agent.Model,
			"protocol", agent.Protocol,
		)
		if !agent.Available() {
			cfg.logger.Warn("no API key configured",
				"provider", agent.DisplayName,
				"env", EnvKey(agent.Provider),
			)
		}
	}
	return agent, nil
}

// ResolvePair resolves both the shallow and the deep agent of a provider.
func ResolvePair(key string, opts ...Option) (shallow, deep *Agent, err error) {
	shallow, err = Resolve(key, agentpick.TierShallow, opts...)
	if err != nil {
		return nil, nil, err
	}
	deep, err = Resolve(key, agentpick.TierDeep, opts...)
	if err != nil {
		return nil, nil, err
	}
	return shallow, deep, nil
}

func resolve(key string, tier agentpick.Tier, cfg config) (*Agent, error) {
	displayName, err := agentpick.SelectLLMProvider(key)
	if err != nil {
		return nil, err
	}
	model, err := agentpick.SelectAgent(key, tier)
	if err != nil {
		return nil, err
	}

	name := agentpick.ProviderName(strings.ToLower(key))
	defaults, ok := knownProviders[name]
	if !ok {
		return nil, fmt.Errorf("agentpick: no client defaults for provider %s", name)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(defaults.envKey)
	}

	baseURL := defaults.baseURL
	if cfg.baseURL != "" {
		if err := validateBaseURL(cfg.baseURL); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		baseURL = cfg.baseURL
	}

	return &Agent{
		Provider:    name,
		DisplayName: displayName,
		Tier:        tier,
		Model:       model,
		Protocol:    defaults.protocol,
		BaseURL:     baseURL,
		apiKey:      apiKey,
	}, nil
}

// Available returns true if an API key is set.
func (a *Agent) Available() bool {
	return a.apiKey != ""
}

// String returns the agent as "DisplayName/model (tier)".
func (a *Agent) String() string {
	return fmt.Sprintf("%s/%s (%s)", a.DisplayName, a.Model, a.Tier)
}

// ChatModel returns the model as an OpenAI SDK chat model.
func (a *Agent) ChatModel() openai.ChatModel {
	return openai.ChatModel(a.Model)
}

// AnthropicModel returns the model as an Anthropic SDK model.
func (a *Agent) AnthropicModel() anthropic.Model {
	return anthropic.Model(a.Model)
}

// OpenAIClient builds an OpenAI SDK client for providers speaking the OpenAI protocol.
func (a *Agent) OpenAIClient() (openai.Client, error) {
	if a.Protocol != ProtocolOpenAI {
		return openai.Client{}, fmt.Errorf("%w: %s uses %s", ErrProtocolMismatch, a.DisplayName, a.Protocol)
	}
	if !a.Available() {
		return openai.Client{}, fmt.Errorf("%w: set %s", ErrMissingAPIKey, EnvKey(a.Provider))
	}

	opts := []option.RequestOption{
		option.WithAPIKey(a.apiKey),
	}
	if a.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(a.BaseURL))
	}
	return openai.NewClient(opts...), nil
}

// AnthropicClient builds an Anthropic SDK client for providers speaking the Anthropic protocol.
func (a *Agent) AnthropicClient() (anthropic.Client, error) {
	if a.Protocol != ProtocolAnthropic {
		return anthropic.Client{}, fmt.Errorf("%w: %s uses %s", ErrProtocolMismatch, a.DisplayName, a.Protocol)
	}
	if !a.Available() {
		return anthropic.Client{}, fmt.Errorf("%w: set %s", ErrMissingAPIKey, EnvKey(a.Provider))
	}

	opts := []anthropicopt.RequestOption{
		anthropicopt.WithAPIKey(a.apiKey),
	}
	if a.BaseURL != "" {
		opts = append(opts, anthropicopt.WithBaseURL(a.BaseURL))
	}
	return anthropic.NewClient(opts...), nil
}
