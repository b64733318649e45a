package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/template"

	"github.com/google/uuid"
)

var ErrNoPreview = errors.New("preview not available")

// Sink turns a self-contained HTML print document into output bytes. The
// chromedp sink produces PDF; the HTML sink is the fallback when no browser
// is available.
type Sink interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, html string) ([]byte, error)

func (f SinkFunc) Render(ctx context.Context, html string) ([]byte, error) { return f(ctx, html) }

// PreviewSource is the exporter's only view of the live editor: the current
// preview snapshot plus the metadata stamped onto the artifact.
type PreviewSource interface {
	PreviewHTML() string
	Title() string
	TemplateID() string
	Snapshot() model.Document
}

// ExportsRepo records export jobs, best-effort.
type ExportsRepo interface {
	Save(ctx context.Context, job *domain.ExportJob) error
}

// Exporter snapshots the preview, wraps it into an isolated print document
// and feeds it to the sink. A second export simply replaces the fixed-name
// artifacts of the first: last request wins.
type Exporter struct {
	source   PreviewSource
	sink     Sink
	repo     ExportsRepo
	dir      string
	timeout  time.Duration
	attempts int
	backoff  time.Duration
}

func NewExporter(source PreviewSource, sink Sink, repo ExportsRepo, dir string) *Exporter {
	return &Exporter{
		source:   source,
		sink:     sink,
		repo:     repo,
		dir:      dir,
		timeout:  90 * time.Second,
		attempts: 3,
		backoff:  time.Second,
	}
}

type ExportResult struct {
	JobID    uuid.UUID `json:"jobId"`
	Title    string    `json:"title"`
	HTMLPath string    `json:"htmlPath"`
	PDFPath  string    `json:"pdfPath,omitempty"`
	PDF      []byte    `json:"-"`
}

// Fixed artifact basenames; re-exporting overwrites them.
const (
	htmlArtifact = "resume.html"
	pdfArtifact  = "resume.pdf"
)

// SanitizeTitle strips characters that are unsafe in a document title used
// as a filename hint.
func SanitizeTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '&':
			return -1
		}
		return r
	}, title)
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return title
}

// BuildPrintDocument wraps a rendered preview into a fully self-contained
// HTML document: fixed A4 page, zero margin, exact color reproduction and
// shadows suppressed. Nothing in it references the host application.
func BuildPrintDocument(previewHTML, title string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + SanitizeTitle(title) + "</title>\n")
	sb.WriteString(`<style>
@page { size: A4 portrait; margin: 0; }
html, body { margin: 0; padding: 0; background: #ffffff; }
* { -webkit-print-color-adjust: exact; print-color-adjust: exact; box-shadow: none !important; text-shadow: none !important; }
#` + template.PreviewRootID + ` { width: 210mm; min-height: 297mm; }
</style>
`)
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(previewHTML)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// Export runs one export cycle. Preconditions are checked before any
// resource is created: with no rendered preview it fails fast and leaves no
// artifacts behind. The HTML artifact is written before the sink runs so it
// survives a sink failure.
// The caller may supply the job id (so a fire-and-forget request can hand it
// back before the export finishes); uuid.Nil means "mint one".
func (e *Exporter) Export(ctx context.Context, jobID uuid.UUID) (*ExportResult, error) {
	preview := e.source.PreviewHTML()
	if strings.TrimSpace(preview) == "" {
		return nil, fmt.Errorf("%w: switch to preview first", ErrNoPreview)
	}
	if jobID == uuid.Nil {
		jobID = uuid.New()
	}

	title := SanitizeTitle(e.source.Title())
	printDoc := BuildPrintDocument(preview, title)

	job := &domain.ExportJob{
		ID:        jobID,
		Title:     title,
		Template:  e.source.TemplateID(),
		Status:    domain.ExportPreparing,
		Document:  documentAsMap(e.source.Snapshot()),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create artifact dir: %w", err)
	}
	// stale artifacts from an earlier export are replaced, not accumulated
	htmlPath := filepath.Join(e.dir, htmlArtifact)
	pdfPath := filepath.Join(e.dir, pdfArtifact)
	_ = os.Remove(pdfPath)
	if err := os.WriteFile(htmlPath, []byte(printDoc), 0o644); err != nil {
		return nil, fmt.Errorf("export: write html artifact: %w", err)
	}
	job.HTMLPath = htmlPath
	e.saveJob(ctx, job)

	res := &ExportResult{JobID: job.ID, Title: title, HTMLPath: htmlPath}

	// a hung sink must never stall an export silently
	sctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	out, err := e.renderWithRetry(sctx, printDoc)
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		job.UpdatedAt = time.Now()
		e.saveJob(ctx, job)
		return res, fmt.Errorf("export: render failed (html artifact kept at %s): %w", htmlPath, err)
	}

	if err := os.WriteFile(pdfPath, out, 0o644); err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		job.UpdatedAt = time.Now()
		e.saveJob(ctx, job)
		return res, fmt.Errorf("export: write pdf artifact: %w", err)
	}

	job.Status = domain.ExportCompleted
	job.PDFPath = pdfPath
	job.UpdatedAt = time.Now()
	e.saveJob(ctx, job)

	res.PDFPath = pdfPath
	res.PDF = out
	return res, nil
}

// renderWithRetry drives the sink for a fixed number of attempts with
// exponential backoff, so a transient Chrome hiccup does not fail the export.
func (e *Exporter) renderWithRetry(ctx context.Context, printDoc string) ([]byte, error) {
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		out, err := e.sink.Render(ctx, printDoc)
		if err == nil {
			return out, nil
		}
		renderErr = err
		log.Printf("export: render attempt %d failed: %v", i+1, err)
		if i < e.attempts-1 {
			select {
			case <-time.After(e.backoff * time.Duration(1<<i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("render failed after %d attempts: %w", e.attempts, renderErr)
}

func (e *Exporter) saveJob(ctx context.Context, job *domain.ExportJob) {
	if e.repo == nil {
		return
	}
	if err := e.repo.Save(ctx, job); err != nil {
		log.Printf("export: unable to record job %s (non-fatal): %v", job.ID, err)
	}
}

func documentAsMap(doc model.Document) map[string]interface{} {
	b, err := json.Marshal(doc)
	if err != nil {
		return map[string]interface{}{}
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
