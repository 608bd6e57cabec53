// Package provider defines the contract shared by external text-generation adapters.
package provider

import "errors"

// ErrNotConfigured is returned by an adapter whose credential is absent.
var ErrNotConfigured = errors.New("provider not configured")

// CompletionRequest is a single system+user prompt sent to a language model.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider to reply with a JSON object only.
	JSON bool
}
