// Package ai calls the internal ai-service to suggest improved resume
// content per section. Every failure degrades to a canned local fallback;
// enhancement is best-effort and never surfaces an error to the editor.
package ai

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"resume-builder/pkg/ai/formatters"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://ai-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// Suggestion is what the editor shows the user: replacement text or a list,
// with Fallback set when the ai-service could not be used.
type Suggestion struct {
	Section  string   `json:"section"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	Fallback bool     `json:"fallback"`
}

// Enhance produces a suggestion for one section. Unknown sections and any
// ai-service failure return fallback content, never an error.
func (c *Client) Enhance(ctx context.Context, section string, payload map[string]interface{}) Suggestion {
	switch section {
	case "summary":
		text, err := formatters.NewSummaryFormatter(c.HTTP, c.BaseURL).Format(ctx, payload)
		if err != nil {
			log.Printf("ai: summary enhancement failed, using fallback: %v", err)
			return Suggestion{Section: section, Text: formatters.FallbackSummary(), Fallback: true}
		}
		return Suggestion{Section: section, Text: text}
	case "experience":
		bullets, err := formatters.NewExperienceFormatter(c.HTTP, c.BaseURL).Format(ctx, payload)
		if err != nil {
			log.Printf("ai: experience enhancement failed, using fallback: %v", err)
			return Suggestion{Section: section, Items: formatters.FallbackBullets(), Fallback: true}
		}
		return Suggestion{Section: section, Items: bullets}
	case "skills":
		skills, err := formatters.NewSkillsFormatter(c.HTTP, c.BaseURL).Format(ctx, payload)
		if err != nil {
			log.Printf("ai: skills enhancement failed, using fallback: %v", err)
			return Suggestion{Section: section, Items: formatters.FallbackSkills(), Fallback: true}
		}
		return Suggestion{Section: section, Items: skills}
	}
	log.Printf("ai: no enhancer for section %q, using generic fallback", section)
	return Suggestion{Section: section, Text: formatters.FallbackSummary(), Fallback: true}
}
