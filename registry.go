package agentpick

import (
	"strings"
)

// providerNames lists the supported providers in display order.
var providerNames = []string{
	"OpenAI",
	"Anthropic",
	"DeepSeek",
}

// shallowAgentOptions maps a provider key to its shallow thinking agent models.
// Only the first entry is selected.
var shallowAgentOptions = map[ProviderName][]string{
	OpenAI:    {OpenAIGPT4oMini},
	Anthropic: {AnthropicClaude3Haiku},
	DeepSeek:  {DeepSeekChat},
}

// deepAgentOptions maps a provider key to its deep thinking agent models.
// Only the first entry is selected.
var deepAgentOptions = map[ProviderName][]string{
	OpenAI:    {OpenAIGPT4o},
	Anthropic: {AnthropicClaude3Opus},
	DeepSeek:  {DeepSeekReasoner},
}

// providersByKey is the lowercase view of providerNames.
var providersByKey = indexProviders(providerNames)

func indexProviders(names []string) map[ProviderName]string {
	m := make(map[ProviderName]string, len(names))
	for _, name := range names {
		m[normalizeKey(name)] = name
	}
	return m
}

// normalizeKey folds a caller-supplied provider key to its table form.
func normalizeKey(key string) ProviderName {
	return ProviderName(strings.ToLower(key))
}

// SelectLLMProvider returns the display name for a provider key, e.g. "OpenAI"
// for "openai". The key is case-insensitive.
func SelectLLMProvider(key string) (string, error) {
	name, ok := providersByKey[normalizeKey(key)]
	if !ok {
		return "", &UnknownKeyError{Table: TableProvider, Key: key}
	}
	return name, nil
}

// SelectShallowThinkingAgent returns the default shallow thinking agent model
// for a provider key. The key is case-insensitive.
func SelectShallowThinkingAgent(key string) (string, error) {
	return firstOption(shallowAgentOptions, TableShallowAgent, key)
}

// SelectDeepThinkingAgent returns the default deep thinking agent model
// for a provider key. The key is case-insensitive.
func SelectDeepThinkingAgent(key string) (string, error) {
	return firstOption(deepAgentOptions, TableDeepAgent, key)
}

// ShallowAgentOptions returns a copy of all shallow thinking agent models
// listed for a provider key.
func ShallowAgentOptions(key string) ([]string, error) {
	return copyOptions(shallowAgentOptions, TableShallowAgent, key)
}

// DeepAgentOptions returns a copy of all deep thinking agent models
// listed for a provider key.
func DeepAgentOptions(key string) ([]string, error) {
	return copyOptions(deepAgentOptions, TableDeepAgent, key)
}

// Providers returns the provider display names in display order.
// The returned slice is a copy.
func Providers() []string {
	out := make([]string, len(providerNames))
	copy(out, providerNames)
	return out
}

// ProviderKeys returns the provider keys in display order.
func ProviderKeys() []ProviderName {
	keys := make([]ProviderName, 0, len(providerNames))
	for _, name := range providerNames {
		keys = append(keys, normalizeKey(name))
	}
	return keys
}

// IsKnownProvider reports whether key names a provider, ignoring case.
func IsKnownProvider(key string) bool {
	_, ok := providersByKey[normalizeKey(key)]
	return ok
}

func firstOption(table map[ProviderName][]string, kind Table, key string) (string, error) {
	models, ok := table[normalizeKey(key)]
	if !ok || len(models) == 0 {
		return "", &UnknownKeyError{Table: kind, Key: key}
	}
	return models[0], nil
}

func copyOptions(table map[ProviderName][]string, kind Table, key string) ([]string, error) {
	models, ok := table[normalizeKey(key)]
	if !ok {
		return nil, &UnknownKeyError{Table: kind, Key: key}
	}
	out := make([]string, len(models))
	copy(out, models)
	return out, nil
}
