// Package adapter defines what a site adapter must provide for the toolkit to
// drive a chat page from a deep-link fragment.
package adapter

import (
	"fmt"

	"github.com/kernel/chat-toolkit/pkg/toolkithash"
)

// Page is the part of a chat page a site adapter controls.
type Page interface {
	SelectTool(tool string) error
	FillPrompt(prompt string) error
	PasteImage() error
	Submit() error
	ClearHash() error
}

// Consume parses the page's fragment and applies it to page. A fragment that
// fails to decode is left in place so the user can still see it.
func Consume(page Page, hash, search string) (toolkithash.Params, error) {
	params, err := toolkithash.Parse(hash, search)
	if err != nil {
		return toolkithash.Params{}, fmt.Errorf("failed to parse fragment: %w", err)
	}
	if !params.HasPrompt() {
		return params, nil
	}

	if params.Tool != "" {
		if err := page.SelectTool(params.Tool); err != nil {
			return params, fmt.Errorf("failed to select tool %q: %w", params.Tool, err)
		}
	}
	if err := page.FillPrompt(params.Prompt); err != nil {
		return params, fmt.Errorf("failed to fill prompt: %w", err)
	}
	if params.PasteImage {
		if err := page.PasteImage(); err != nil {
			return params, fmt.Errorf("failed to paste image: %w", err)
		}
	}
	if params.AutoSubmit {
		if err := page.Submit(); err != nil {
			return params, fmt.Errorf("failed to submit prompt: %w", err)
		}
	}
	if err := page.ClearHash(); err != nil {
		return params, fmt.Errorf("failed to clear fragment: %w", err)
	}
	return params, nil
}
