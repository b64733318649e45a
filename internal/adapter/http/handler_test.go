package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
)

func newTestApp(t *testing.T) (*fiber.App, *usecase.Builder, string) {
	t.Helper()

	builder := usecase.NewBuilder(nil, time.Hour)
	dir := t.TempDir()
	sink := usecase.SinkFunc(func(ctx context.Context, html string) ([]byte, error) {
		return []byte("%PDF-1.4 stub"), nil
	})
	exports := repository.NewExportsRepo(nil)
	exporter := usecase.NewExporter(builder, sink, exports, dir)

	// ai-service that is not there: enhancement must degrade to fallbacks
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	aiClient := &ai.Client{BaseURL: dead.URL, HTTP: &http.Client{Timeout: time.Second}}

	app := fiber.New()
	NewHandler(builder, exporter, exports, aiClient).Register(app)
	return app, builder, dir
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	out := map[string]interface{}{}
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(b) > 0 {
		_ = json.Unmarshal(b, &out)
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp, body := doJSON(t, app, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestGetResume_DefaultDocument(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp, body := doJSON(t, app, fiber.MethodGet, "/resume", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, body, "personal")
	assert.Contains(t, body, "experience")
	assert.Contains(t, body, "skills")
}

func TestPutResume_ReplacesDocument(t *testing.T) {
	app, builder, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/resume",
		`{"personal": {"name": "Alex Johnson", "email": "alex@example.com"}}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alex Johnson", builder.Snapshot().Personal.Name)
}

func TestPutResume_RejectsUnknownFields(t *testing.T) {
	app, builder, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPut, "/resume",
		`{"personal": {"name": "Alex"}, "hobbies": ["chess"]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, builder.Snapshot().Personal.Name, "a rejected payload must not be applied")
}

func TestPutPersonal_ReturnsScore(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPut, "/resume/personal",
		`{"name": "Alex", "email": "a@b.c"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(usecase.ScoreName+usecase.ScoreEmail), body["score"])
}

func TestEntryLifecycle(t *testing.T) {
	app, builder, _ := newTestApp(t)

	resp, created := doJSON(t, app, fiber.MethodPost, "/resume/skills", `{"name": "Go", "level": 250}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id, "a new entry gets a server-minted id")
	assert.Equal(t, float64(100), created["level"], "level is clamped")

	resp, updated := doJSON(t, app, fiber.MethodPut, "/resume/skills/"+id, `{"name": "Golang", "level": 80}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, id, updated["id"], "updating keeps the id stable")
	assert.Equal(t, "Golang", updated["name"])

	req := httptest.NewRequest(fiber.MethodDelete, "/resume/skills/"+id, nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, delResp.StatusCode)
	assert.Empty(t, builder.Snapshot().Skills)
}

func TestEntryErrors(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/resume/hobbies", `{"name": "chess"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "unknown section")

	resp, _ = doJSON(t, app, fiber.MethodPut, "/resume/skills/no-such-id", `{"name": "Go"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "unknown entry id")

	resp, _ = doJSON(t, app, fiber.MethodPost, "/resume/skills", `{"level": "ninety"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "malformed entry body")
}

func TestTemplates_ListAndSelect(t *testing.T) {
	app, builder, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/templates", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	templates, ok := body["templates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, templates, 5)
	assert.Equal(t, "modern", body["selected"])

	resp, _ = doJSON(t, app, fiber.MethodPut, "/template", `{"id": "creative"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "creative", builder.TemplateID())

	resp, _ = doJSON(t, app, fiber.MethodPut, "/template", `{"id": "neon"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "creative", builder.TemplateID(), "a failed select leaves the selection alone")
}

func TestTitle_RoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/title", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, usecase.DefaultTitle, body["title"])

	_, body = doJSON(t, app, fiber.MethodPut, "/title", `{"title": "Alex CV"}`)
	assert.Equal(t, "Alex CV", body["title"])
}

func TestPreview_ServesHTML(t *testing.T) {
	app, _, _ := newTestApp(t)
	_, _ = doJSON(t, app, fiber.MethodPut, "/resume/personal", `{"name": "Alex Johnson"}`)

	req := httptest.NewRequest(fiber.MethodGet, "/preview", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Alex Johnson")
	assert.Contains(t, string(b), `id="resume-preview-root"`)
}

func TestScoreEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)
	resp, body := doJSON(t, app, fiber.MethodGet, "/score", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["score"])
}

func TestStartExport_AcceptedAndArtifactsAppear(t *testing.T) {
	app, _, dir := newTestApp(t)
	_, _ = doJSON(t, app, fiber.MethodPut, "/resume/personal", `{"name": "Alex"}`)

	resp, body := doJSON(t, app, fiber.MethodPost, "/export", "")
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "started", body["status"])
	assert.NotEmpty(t, body["jobId"])

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "resume.pdf"))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond, "the background export must produce the pdf artifact")

	html, err := os.ReadFile(filepath.Join(dir, "resume.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Alex")
}

func TestGetExport_InvalidAndUnknownID(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/exports/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// without a database every lookup is a miss
	resp, _ = doJSON(t, app, fiber.MethodGet, "/exports/6f1f64e5-31cd-4b4c-90db-89b5b0a8e50e", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnhance_FallsBackWhenServiceIsDown(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/enhance/summary", `{"summary": "i write code"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["fallback"])
	assert.NotEmpty(t, body["text"])
}
