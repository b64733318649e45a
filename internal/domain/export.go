package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportJob records one export request and its outcome. The only guaranteed
// outcome of an export is "a print document was produced", so the job tracks
// artifact paths rather than a delivery receipt.
type ExportJob struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Template  string                 `json:"template"`
	Status    string                 `json:"status"` // preparing | completed | failed
	HTMLPath  string                 `json:"html_path"`
	PDFPath   string                 `json:"pdf_path"`
	Error     string                 `json:"error,omitempty"`
	Document  map[string]interface{} `json:"document"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

const (
	ExportPreparing = "preparing"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)
