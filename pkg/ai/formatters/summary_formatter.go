package formatters

import (
	"context"
	"fmt"
	"net/http"
)

type SummaryFormatter struct {
	client  *http.Client
	baseURL string
}

func NewSummaryFormatter(httpClient *http.Client, baseURL string) *SummaryFormatter {
	return &SummaryFormatter{client: httpClient, baseURL: baseURL}
}

// Format asks the ai-service for an improved professional summary. The
// payload carries the current summary plus whatever context the caller has
// (title, top skills).
func (sf *SummaryFormatter) Format(ctx context.Context, payload map[string]interface{}) (string, error) {
	instr := "Return ONLY a single JSON object with key 'summary'.\n\nCRITICAL:\n- summary: a rewritten professional summary, 150-300 characters\n- keep it factual, first person omitted, no buzzword padding\n"
	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}

	out, err := postChat(ctx, sf.client, sf.baseURL, "Improve resume summary:\n"+mustMarshal(userCtx))
	if err != nil {
		return "", err
	}
	if s, ok := out["summary"].(string); ok && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("ai-service response missing summary")
}

// FallbackSummary is the canned suggestion returned when the ai-service is
// unreachable or misbehaves.
func FallbackSummary() string {
	return "Results-driven professional with hands-on experience delivering measurable outcomes. " +
		"Strong track record of ownership across the full project lifecycle, from planning through delivery, " +
		"with a focus on quality and collaboration."
}
