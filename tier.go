package agentpick

import (
	"fmt"
	"strings"
)

// Tier is a capability tier of thinking agent.
type Tier string

// Tier constants.
const (
	// TierShallow is a lower-cost, faster model for lightweight reasoning.
	TierShallow Tier = "shallow"
	// TierDeep is a higher-capability model for demanding reasoning.
	TierDeep Tier = "deep"
)

// String returns the tier name.
func (t Tier) String() string {
	return string(t)
}

// ParseTier parses a tier name, ignoring case.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(s)); t {
	case TierShallow, TierDeep:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// SelectAgent returns the default model for a provider key at the given tier.
func SelectAgent(key string, tier Tier) (string, error) {
	switch tier {
	case TierShallow:
		return SelectShallowThinkingAgent(key)
	case TierDeep:
		return SelectDeepThinkingAgent(key)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, string(tier))
}

// AgentOptions returns a copy of all models listed for a provider key at the given tier.
func AgentOptions(key string, tier Tier) ([]string, error) {
	switch tier {
	case TierShallow:
		return ShallowAgentOptions(key)
	case TierDeep:
		return DeepAgentOptions(key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTier, string(tier))
}
