package agentpick

// OpenAI GPT models.
const (
	// GPT-4o
	OpenAIGPT4o = "gpt-4o"
	// GPT-4o Mini
	OpenAIGPT4oMini = "gpt-4o-mini"
)

// Anthropic Claude models.
// These are family aliases, not dated snapshots.
const (
	// Claude 3 Opus - Most capable Claude 3 model
	AnthropicClaude3Opus = "claude-3-opus"
	// Claude 3 Haiku - Fastest Claude 3 model
	AnthropicClaude3Haiku = "claude-3-haiku"
)

// DeepSeek models.
const (
	// DeepSeek Chat (V3) - General purpose
	DeepSeekChat = "deepseek-chat"
	// DeepSeek Reasoner - Chain-of-thought reasoning
	DeepSeekReasoner = "deepseek-reasoner"
)
