// Package http exposes the resume builder over a REST API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/template"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	builder  *usecase.Builder
	exporter *usecase.Exporter
	exports  *repository.ExportsRepo
	ai       *ai.Client
}

func NewHandler(b *usecase.Builder, e *usecase.Exporter, exports *repository.ExportsRepo, aiClient *ai.Client) *Handler {
	return &Handler{builder: b, exporter: e, exports: exports, ai: aiClient}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	app.Get("/resume", h.GetResume)
	app.Put("/resume", h.PutResume)
	app.Post("/resume/reset", h.ResetResume)
	app.Put("/resume/personal", h.PutPersonal)
	app.Post("/resume/:section", h.AddEntry)
	app.Put("/resume/:section/:id", h.UpdateEntry)
	app.Delete("/resume/:section/:id", h.DeleteEntry)

	app.Get("/templates", h.ListTemplates)
	app.Put("/template", h.SelectTemplate)
	app.Get("/title", h.GetTitle)
	app.Put("/title", h.PutTitle)

	app.Get("/preview", h.Preview)
	app.Get("/score", h.GetScore)

	app.Post("/export", h.StartExport)
	app.Get("/exports/:id", h.GetExport)

	app.Post("/enhance/:section", h.Enhance)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.builder.Snapshot())
}

func (h *Handler) PutResume(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateJSON(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.builder.ReplaceDocument(doc)
	return c.JSON(h.builder.Snapshot())
}

func (h *Handler) ResetResume(c *fiber.Ctx) error {
	h.builder.Reset()
	return c.JSON(h.builder.Snapshot())
}

func (h *Handler) PutPersonal(c *fiber.Ctx) error {
	var p model.Personal
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.builder.SetPersonal(p)
	return c.JSON(fiber.Map{"personal": p, "score": h.builder.Score()})
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	section := c.Params("section")
	entry, err := h.builder.AppendEntry(section, json.RawMessage(c.Body()))
	if err != nil {
		return sectionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	section := c.Params("section")
	id := c.Params("id")
	entry, err := h.builder.UpdateEntry(section, id, json.RawMessage(c.Body()))
	if err != nil {
		return sectionError(c, err)
	}
	return c.JSON(entry)
}

func (h *Handler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.builder.RemoveEntry(c.Params("section"), c.Params("id")); err != nil {
		return sectionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sectionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownSection):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": template.Catalog(), "selected": h.builder.TemplateID()})
}

func (h *Handler) SelectTemplate(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.builder.SelectTemplate(req.ID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"selected": req.ID})
}

func (h *Handler) GetTitle(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"title": h.builder.Title()})
}

func (h *Handler) PutTitle(c *fiber.Ctx) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.builder.SetTitle(req.Title)
	return c.JSON(fiber.Map{"title": h.builder.Title()})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(h.builder.PreviewHTML())
}

func (h *Handler) GetScore(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"score": h.builder.Score()})
}

// StartExport kicks off a one-shot export in the background and answers with
// the job id. The true outcome ("did the user get a PDF") is tracked on the
// job record, not the response.
func (h *Handler) StartExport(c *fiber.Ctx) error {
	// precondition checked before any resource is allocated
	if strings.TrimSpace(h.builder.PreviewHTML()) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "preview not available - switch to preview first"})
	}
	jobID := uuid.New()

	go func() {
		ctx := context.Background()
		if _, err := h.exporter.Export(ctx, jobID); err != nil {
			log.Printf("export job %s failed: %v", jobID, err)
		}
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": jobID.String(), "status": "started"})
}

func (h *Handler) GetExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	job, err := h.exports.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(job)
}

func (h *Handler) Enhance(c *fiber.Ctx) error {
	section := c.Params("section")
	payload := map[string]interface{}{}
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}
	suggestion := h.ai.Enhance(c.Context(), section, payload)
	return c.JSON(suggestion)
}
