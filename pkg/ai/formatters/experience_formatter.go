package formatters

import (
	"context"
	"fmt"
	"net/http"
)

type ExperienceFormatter struct {
	client  *http.Client
	baseURL string
}

func NewExperienceFormatter(httpClient *http.Client, baseURL string) *ExperienceFormatter {
	return &ExperienceFormatter{client: httpClient, baseURL: baseURL}
}

// Format asks the ai-service to rewrite a role's bullet points. Returns the
// suggested bullets.
func (ef *ExperienceFormatter) Format(ctx context.Context, payload map[string]interface{}) ([]string, error) {
	instr := "Return ONLY a single JSON object with key 'bullets' (array of strings).\n\nCRITICAL:\n- 2-4 bullets, each starting with a strong action verb\n- quantify impact where the input gives numbers; never invent numbers\n- each bullet under 160 characters\n"
	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}

	out, err := postChat(ctx, ef.client, ef.baseURL, "Rewrite experience bullets:\n"+mustMarshal(userCtx))
	if err != nil {
		return nil, err
	}
	bullets := stringList(out["bullets"])
	if len(bullets) == 0 {
		return nil, fmt.Errorf("ai-service response missing bullets")
	}
	return bullets, nil
}

// FallbackBullets returns canned bullet suggestions.
func FallbackBullets() []string {
	return []string{
		"Led development of key features, improving user satisfaction",
		"Collaborated with cross-functional teams to deliver projects on time",
		"Implemented best practices that reduced errors and rework",
	}
}
