package formatters

import (
	"context"
	"fmt"
	"net/http"
)

type SkillsFormatter struct {
	client  *http.Client
	baseURL string
}

func NewSkillsFormatter(httpClient *http.Client, baseURL string) *SkillsFormatter {
	return &SkillsFormatter{client: httpClient, baseURL: baseURL}
}

// Format asks the ai-service for skills worth adding, given the current
// skills and role context.
func (sf *SkillsFormatter) Format(ctx context.Context, payload map[string]interface{}) ([]string, error) {
	instr := "Return ONLY a single JSON object with key 'skills' (array of strings).\n\nCRITICAL:\n- 3-6 skill names relevant to the given role and existing skills\n- short names only, no sentences\n"
	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}

	out, err := postChat(ctx, sf.client, sf.baseURL, "Suggest resume skills:\n"+mustMarshal(userCtx))
	if err != nil {
		return nil, err
	}
	skills := stringList(out["skills"])
	if len(skills) == 0 {
		return nil, fmt.Errorf("ai-service response missing skills")
	}
	return skills, nil
}

// FallbackSkills returns canned skill suggestions.
func FallbackSkills() []string {
	return []string{"Communication", "Problem Solving", "Team Leadership", "Project Management"}
}
