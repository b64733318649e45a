package formatters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// postChat sends one request to the ai-service chat endpoint and decodes the
// JSON object in its output, tolerating markdown-wrapped responses.
func postChat(ctx context.Context, client *http.Client, baseURL, input string) (map[string]interface{}, error) {
	reqObj := map[string]interface{}{"agent": "auto", "input": input}
	b, _ := json.Marshal(reqObj)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(rb, &chatResp); err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(chatResp.Output), &out); err != nil {
		// Try extracting JSON from the response if wrapped in markdown
		if sub, ok := extractJSONObject(chatResp.Output); ok {
			if err2 := json.Unmarshal([]byte(sub), &out); err2 == nil {
				return out, nil
			}
		}
		return nil, fmt.Errorf("ai-service returned non-json content: %w", err)
	}
	return out, nil
}

// extractJSONObject returns the substring between the first '{' and the last
// '}', which is where models tend to hide the object.
func extractJSONObject(s string) (string, bool) {
	start := -1
	end := -1
	for i, r := range s {
		if r == '{' {
			start = i
			break
		}
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '}' {
			end = i
			break
		}
	}
	if start >= 0 && end > start {
		return s[start : end+1], true
	}
	return "", false
}

// stringList coerces a decoded JSON value into a list of non-empty strings.
func stringList(v interface{}) []string {
	out := []string{}
	switch t := v.(type) {
	case []interface{}:
		for _, it := range t {
			if s, ok := it.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
	case string:
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
