package repository

import (
	"context"
	"encoding/json"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var ErrJobNotFound = errors.New("export job not found")

// ExportsRepo stores export jobs in Postgres. A nil pool is tolerated: every
// operation becomes a no-op so the editor keeps working without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	docB, _ := json.Marshal(j.Document)

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, title, template, status, html_path, pdf_path, error, document, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, html_path = EXCLUDED.html_path, pdf_path = EXCLUDED.pdf_path, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Title, j.Template, j.Status, j.HTMLPath, j.PDFPath, j.Error, docB, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *ExportsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		return nil, ErrJobNotFound
	}

	var j domain.ExportJob
	var docB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, title, template, status, html_path, pdf_path, error, document, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Title, &j.Template, &j.Status, &j.HTMLPath, &j.PDFPath, &j.Error, &docB, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if len(docB) > 0 {
		_ = json.Unmarshal(docB, &j.Document)
	}
	return &j, nil
}
