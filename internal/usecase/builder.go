// Package usecase owns the live resume document and the pipeline hanging off
// it: every mutation re-renders the preview, recomputes the ATS score and
// schedules a debounced autosave.
package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/template"
)

// Persisted-state keys, one JSON value per key.
const (
	KeyDocument = "document"
	KeyTemplate = "template"
	KeyTitle    = "title"
)

const (
	DefaultTitle    = "My Resume"
	DefaultTemplate = "modern"
)

var (
	ErrNotFound       = errors.New("entry not found")
	ErrUnknownSection = errors.New("unknown section")
)

// Store persists builder state under fixed logical keys. Implementations
// return an error when a key is missing or unreadable; the builder treats any
// load failure as "use defaults".
type Store interface {
	Save(key string, v interface{}) error
	Load(key string, v interface{}) error
}

// Builder owns the single live document. All mutations go through it; it is
// the only writer, and every write leaves preview and score in sync with the
// document.
type Builder struct {
	mu         sync.Mutex
	doc        model.Document
	templateID string
	title      string
	preview    string
	score      int

	store    Store
	debounce time.Duration
	saveGen  uint64
}

// NewBuilder loads persisted state (falling back to defaults on missing or
// corrupt data) and renders the initial preview.
func NewBuilder(store Store, debounce time.Duration) *Builder {
	if debounce <= 0 {
		debounce = 800 * time.Millisecond
	}
	b := &Builder{
		doc:        model.Default(),
		templateID: DefaultTemplate,
		title:      DefaultTitle,
		store:      store,
		debounce:   debounce,
	}
	if store != nil {
		var doc model.Document
		if err := store.Load(KeyDocument, &doc); err == nil {
			doc.Normalize()
			b.doc = doc
		} else {
			log.Printf("builder: no persisted document, using defaults: %v", err)
		}
		var tplID string
		if err := store.Load(KeyTemplate, &tplID); err == nil {
			if _, err := template.ByID(tplID); err == nil {
				b.templateID = tplID
			}
		}
		var title string
		if err := store.Load(KeyTitle, &title); err == nil && title != "" {
			b.title = title
		}
	}
	b.refresh()
	return b
}

// refresh re-renders the preview and recomputes the score. Callers must hold
// the lock. Rendering a catalog template over a normalized document cannot
// fail; a failure here is a bug and leaves the previous preview in place.
func (b *Builder) refresh() {
	html, err := template.Render(b.templateID, b.doc, "")
	if err != nil {
		log.Printf("builder: preview render failed: %v", err)
		return
	}
	b.preview = html
	b.score = Score(b.doc)
}

// scheduleSave debounces persistence with a monotonic generation counter:
// a newer edit invalidates older pending saves, so only the final state of a
// burst hits the store. Callers must hold the lock.
func (b *Builder) scheduleSave() {
	if b.store == nil {
		return
	}
	b.saveGen++
	gen := b.saveGen
	time.AfterFunc(b.debounce, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.saveGen != gen {
			return
		}
		b.persistLocked()
	})
}

func (b *Builder) persistLocked() {
	if b.store == nil {
		return
	}
	if err := b.store.Save(KeyDocument, b.doc); err != nil {
		log.Printf("builder: autosave document failed (non-fatal): %v", err)
	}
	if err := b.store.Save(KeyTemplate, b.templateID); err != nil {
		log.Printf("builder: autosave template failed (non-fatal): %v", err)
	}
	if err := b.store.Save(KeyTitle, b.title); err != nil {
		log.Printf("builder: autosave title failed (non-fatal): %v", err)
	}
}

// Flush persists the current state immediately, superseding pending saves.
func (b *Builder) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saveGen++
	b.persistLocked()
}

// Snapshot returns a deep copy of the live document.
func (b *Builder) Snapshot() model.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.Clone()
}

func (b *Builder) PreviewHTML() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.preview
}

func (b *Builder) Score() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score
}

func (b *Builder) TemplateID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.templateID
}

func (b *Builder) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

// mutate applies fn to a working copy and installs the result, so a panic or
// partial edit never leaves the published document half-written.
func (b *Builder) mutate(fn func(d *model.Document)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.doc.Clone()
	fn(&next)
	next.Normalize()
	b.doc = next
	b.refresh()
	b.scheduleSave()
}

// SetPersonal replaces the personal block.
func (b *Builder) SetPersonal(p model.Personal) {
	b.mutate(func(d *model.Document) { d.Personal = p })
}

// ReplaceDocument swaps in a whole new document (import path).
func (b *Builder) ReplaceDocument(doc model.Document) {
	b.mutate(func(d *model.Document) { *d = doc })
}

// Reset reverts document, template and title to defaults and persists
// immediately.
func (b *Builder) Reset() {
	b.mu.Lock()
	b.doc = model.Default()
	b.templateID = DefaultTemplate
	b.title = DefaultTitle
	b.refresh()
	b.saveGen++
	b.persistLocked()
	b.mu.Unlock()
}

// SelectTemplate switches the active template. The document itself is
// untouched; only presentation changes.
func (b *Builder) SelectTemplate(id string) error {
	if _, err := template.ByID(id); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.templateID = id
	b.refresh()
	b.scheduleSave()
	return nil
}

func (b *Builder) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if title == "" {
		title = DefaultTitle
	}
	b.title = title
	b.scheduleSave()
}

// AppendEntry decodes raw JSON into the section's entry type, mints an id and
// appends it. It returns the stored entry (with its new id).
func (b *Builder) AppendEntry(section string, raw json.RawMessage) (interface{}, error) {
	var stored interface{}
	var decodeErr error
	apply := func(d *model.Document) {
		switch section {
		case "experience":
			var e model.ExperienceEntry
			if decodeErr = json.Unmarshal(raw, &e); decodeErr != nil {
				return
			}
			e.ID = model.NewID()
			d.Experience = append(d.Experience, e)
			stored = e
		case "education":
			var e model.EducationEntry
			if decodeErr = json.Unmarshal(raw, &e); decodeErr != nil {
				return
			}
			e.ID = model.NewID()
			d.Education = append(d.Education, e)
			stored = e
		case "skills":
			var e model.SkillEntry
			if decodeErr = json.Unmarshal(raw, &e); decodeErr != nil {
				return
			}
			e.ID = model.NewID()
			e.Level = model.ClampLevel(e.Level)
			d.Skills = append(d.Skills, e)
			stored = e
		case "projects":
			var e model.ProjectEntry
			if decodeErr = json.Unmarshal(raw, &e); decodeErr != nil {
				return
			}
			e.ID = model.NewID()
			d.Projects = append(d.Projects, e)
			stored = e
		case "certificates":
			var e model.CertificateEntry
			if decodeErr = json.Unmarshal(raw, &e); decodeErr != nil {
				return
			}
			e.ID = model.NewID()
			d.Certificates = append(d.Certificates, e)
			stored = e
		default:
			decodeErr = fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
	}
	b.mutateChecked(apply, &decodeErr)
	return stored, decodeErr
}

// UpdateEntry replaces the entry with the given id, preserving the id.
func (b *Builder) UpdateEntry(section, id string, raw json.RawMessage) (interface{}, error) {
	var stored interface{}
	var opErr error
	apply := func(d *model.Document) {
		switch section {
		case "experience":
			var e model.ExperienceEntry
			if opErr = json.Unmarshal(raw, &e); opErr != nil {
				return
			}
			e.ID = id
			for i := range d.Experience {
				if d.Experience[i].ID == id {
					d.Experience[i] = e
					stored = e
					return
				}
			}
			opErr = ErrNotFound
		case "education":
			var e model.EducationEntry
			if opErr = json.Unmarshal(raw, &e); opErr != nil {
				return
			}
			e.ID = id
			for i := range d.Education {
				if d.Education[i].ID == id {
					d.Education[i] = e
					stored = e
					return
				}
			}
			opErr = ErrNotFound
		case "skills":
			var e model.SkillEntry
			if opErr = json.Unmarshal(raw, &e); opErr != nil {
				return
			}
			e.ID = id
			e.Level = model.ClampLevel(e.Level)
			for i := range d.Skills {
				if d.Skills[i].ID == id {
					d.Skills[i] = e
					stored = e
					return
				}
			}
			opErr = ErrNotFound
		case "projects":
			var e model.ProjectEntry
			if opErr = json.Unmarshal(raw, &e); opErr != nil {
				return
			}
			e.ID = id
			for i := range d.Projects {
				if d.Projects[i].ID == id {
					d.Projects[i] = e
					stored = e
					return
				}
			}
			opErr = ErrNotFound
		case "certificates":
			var e model.CertificateEntry
			if opErr = json.Unmarshal(raw, &e); opErr != nil {
				return
			}
			e.ID = id
			for i := range d.Certificates {
				if d.Certificates[i].ID == id {
					d.Certificates[i] = e
					stored = e
					return
				}
			}
			opErr = ErrNotFound
		default:
			opErr = fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
	}
	b.mutateChecked(apply, &opErr)
	return stored, opErr
}

// RemoveEntry deletes the entry with the given id.
func (b *Builder) RemoveEntry(section, id string) error {
	var opErr error
	apply := func(d *model.Document) {
		switch section {
		case "experience":
			for i := range d.Experience {
				if d.Experience[i].ID == id {
					d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
					return
				}
			}
			opErr = ErrNotFound
		case "education":
			for i := range d.Education {
				if d.Education[i].ID == id {
					d.Education = append(d.Education[:i], d.Education[i+1:]...)
					return
				}
			}
			opErr = ErrNotFound
		case "skills":
			for i := range d.Skills {
				if d.Skills[i].ID == id {
					d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
					return
				}
			}
			opErr = ErrNotFound
		case "projects":
			for i := range d.Projects {
				if d.Projects[i].ID == id {
					d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
					return
				}
			}
			opErr = ErrNotFound
		case "certificates":
			for i := range d.Certificates {
				if d.Certificates[i].ID == id {
					d.Certificates = append(d.Certificates[:i], d.Certificates[i+1:]...)
					return
				}
			}
			opErr = ErrNotFound
		default:
			opErr = fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
	}
	b.mutateChecked(apply, &opErr)
	return opErr
}

// mutateChecked is mutate, but the edit is discarded when *opErr is non-nil
// after fn runs, so failed decodes never dirty the document.
func (b *Builder) mutateChecked(fn func(d *model.Document), opErr *error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.doc.Clone()
	fn(&next)
	if *opErr != nil {
		return
	}
	next.Normalize()
	b.doc = next
	b.refresh()
	b.scheduleSave()
}
