// Package agentpick provides the default provider and model tables used to pick
// LLM agents.
//
// Design principles:
//   - Static: Tables are built once and never mutated
//   - Forgiving: Provider keys are matched case-insensitively
//   - Explicit: Unknown keys return an error, never a zero value
//
// All functions are safe for concurrent use.
//
// Basic usage:
//
//	name, err := agentpick.SelectLLMProvider("openai") // "OpenAI"
//	fast, err := agentpick.SelectShallowThinkingAgent("openai") // "gpt-4o-mini"
//	deep, err := agentpick.SelectDeepThinkingAgent("OpenAI") // "gpt-4o"
//
// Handling unknown providers:
//
//	_, err := agentpick.SelectDeepThinkingAgent("mistral")
//	if errors.Is(err, agentpick.ErrUnknownKey) {
//	    var ke *agentpick.UnknownKeyError
//	    errors.As(err, &ke) // ke.Table == agentpick.TableDeepAgent, ke.Key == "mistral"
//	}
package agentpick

import (
	"errors"
)

// Version of the agentpick-go library
const Version = "0.1.0"

// Common errors
var (
	ErrUnknownKey  = errors.New("agentpick: unknown key")
	ErrUnknownTier = errors.New("agentpick: unknown tier")
)

// Table identifies which lookup table a key was resolved against.
type Table int

// Lookup tables.
const (
	// TableProvider is the provider display name list.
	TableProvider Table = iota
	// TableShallowAgent is the shallow thinking agent table.
	TableShallowAgent
	// TableDeepAgent is the deep thinking agent table.
	TableDeepAgent
)

// String returns the table name.
func (t Table) String() string {
	switch t {
	case TableProvider:
		return "provider"
	case TableShallowAgent:
		return "shallow agent"
	case TableDeepAgent:
		return "deep agent"
	default:
		return "unknown"
	}
}

// UnknownKeyError is returned when a provider key is absent from a table.
// Key holds the caller's input as given, before case folding.
type UnknownKeyError struct {
	Table Table
	Key   string
}

func (e *UnknownKeyError) Error() string {
	switch e.Table {
	case TableProvider:
		return "agentpick: unknown LLM provider: " + e.Key
	default:
		return "agentpick: unknown provider for " + e.Table.String() + ": " + e.Key
	}
}

// Is reports whether target is ErrUnknownKey.
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// Logger is the interface for structured logging.
// *slog.Logger satisfies this interface out of the box.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
