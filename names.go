package agentpick

// ProviderName is the lowercase key of an LLM provider.
type ProviderName string

// Provider name constants.
const (
	// OpenAI is the key for OpenAI GPT models.
	OpenAI ProviderName = "openai"
	// Anthropic is the key for Anthropic Claude models.
	Anthropic ProviderName = "anthropic"
	// DeepSeek is the key for DeepSeek models.
	DeepSeek ProviderName = "deepseek"
)

// String returns the provider key.
func (p ProviderName) String() string {
	return string(p)
}
