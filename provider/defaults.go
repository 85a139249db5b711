// Package provider binds registry answers to configured SDK clients.
//
// Resolve picks the provider display name and the tier's default model from
// the agentpick tables, then fills in the wire protocol, base URL and API key
// for that provider. Clients are built on demand and no request is sent.
//
//	agent, err := provider.Resolve("deepseek", agentpick.TierDeep)
//	client, err := agent.OpenAIClient()
//	// agent.ChatModel() == "deepseek-reasoner"
package provider

import (
	"github.com/kusandriadi/agentpick-go"
)

// Protocol identifies the API a provider speaks.
type Protocol string

// Protocol constants.
const (
	ProtocolOpenAI    Protocol = "openai"
	ProtocolAnthropic Protocol = "anthropic"
)

// providerDefaults holds client metadata for a known provider.
type providerDefaults struct {
	protocol Protocol
	baseURL  string // empty = SDK default
	envKey   string
}

// knownProviders is keyed by the same provider keys as the agentpick tables.
var knownProviders = map[agentpick.ProviderName]providerDefaults{
	agentpick.OpenAI: {
		protocol: ProtocolOpenAI,
		envKey:   "OPENAI_API_KEY",
	},
	agentpick.Anthropic: {
		protocol: ProtocolAnthropic,
		envKey:   "ANTHROPIC_API_KEY",
	},
	agentpick.DeepSeek: {
		protocol: ProtocolOpenAI,
		baseURL:  "https://api.deepseek.com/v1",
		envKey:   "DEEPSEEK_API_KEY",
	},
}

// EnvKey returns the environment variable read for a provider's API key,
// or "" if the provider is unknown.
func EnvKey(key agentpick.ProviderName) string {
	return knownProviders[key].envKey
}
