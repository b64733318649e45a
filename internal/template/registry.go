// Package template holds the fixed catalog of resume templates and renders
// a Document into self-contained HTML. Rendering is pure: identical input
// yields identical output, every visual property is resolved inline, and the
// input document is never mutated.
package template

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"

	"resume-builder/internal/model"
)

// PreviewRootID is the stable container id wrapping every rendered resume.
// The export engine depends on this id and nothing else.
const PreviewRootID = "resume-preview-root"

var ErrUnknownTemplate = errors.New("unknown template id")

// Template describes one entry of the fixed visual catalog. The catalog is
// not user-editable; selection only.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccentColor string `json:"accentColor"`
	Description string `json:"description"`
}

var catalog = []Template{
	{ID: "modern", Name: "Modern", AccentColor: "#2563eb", Description: "Accent header bar with a clean single column"},
	{ID: "minimal", Name: "Minimal", AccentColor: "#111827", Description: "Plain typographic layout, thin rules"},
	{ID: "classic", Name: "Classic", AccentColor: "#1f2937", Description: "Centered serif header, traditional sections"},
	{ID: "creative", Name: "Creative", AccentColor: "#7c3aed", Description: "Colored sidebar with skills and contact"},
	{ID: "executive", Name: "Executive", AccentColor: "#0f172a", Description: "Two-column body under a wide name banner"},
}

// Catalog returns the fixed template list, in declared order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (Template, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

// contactItem is one header contact field; only non-empty items are built,
// in the fixed declared order, so absent fields collapse without gaps.
type contactItem struct {
	Label string
	Value string
}

// expView carries a pre-formatted experience entry into the templates so
// the "Present" rule lives in exactly one place.
type expView struct {
	model.ExperienceEntry
	Dates string
}

type eduView struct {
	model.EducationEntry
	Dates string
}

// view is the render-time shape shared by all five templates.
type view struct {
	Doc        model.Document
	Accent     string
	Name       string
	Title      string
	Contacts   []contactItem
	Experience []expView
	Education  []eduView
}

// dateRange joins start and end; a current experience entry always displays
// "Present" regardless of any stale end value.
func dateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " – " + end
}

func buildView(doc model.Document, accent string) view {
	v := view{Doc: doc, Accent: accent, Name: doc.Personal.Name, Title: doc.Personal.Title}
	// default header affordance: shown only when the document is otherwise
	// completely empty, never as a placeholder for individual fields
	if doc.IsEmpty() {
		v.Name = "Your Name"
		v.Title = "Professional Title"
	}
	ordered := []contactItem{
		{Label: "email", Value: doc.Personal.Email},
		{Label: "phone", Value: doc.Personal.Phone},
		{Label: "location", Value: doc.Personal.Location},
		{Label: "linkedin", Value: doc.Personal.LinkedIn},
		{Label: "github", Value: doc.Personal.GitHub},
		{Label: "website", Value: doc.Personal.Website},
	}
	for _, c := range ordered {
		if c.Value != "" {
			v.Contacts = append(v.Contacts, c)
		}
	}
	for _, e := range doc.Experience {
		bullets := make([]string, 0, len(e.Bullets))
		for _, b := range e.Bullets {
			if strings.TrimSpace(b) != "" {
				bullets = append(bullets, b)
			}
		}
		e.Bullets = bullets
		v.Experience = append(v.Experience, expView{ExperienceEntry: e, Dates: dateRange(e.Start, e.End, e.Current)})
	}
	for _, e := range doc.Education {
		v.Education = append(v.Education, eduView{EducationEntry: e, Dates: dateRange(e.Start, e.End, false)})
	}
	return v
}

// shortURL trims scheme and www for display in contact rows.
func shortURL(s string) string {
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}

// display renders a contact value; link-ish fields are shown without scheme.
func display(c contactItem) string {
	switch c.Label {
	case "linkedin", "github", "website":
		return shortURL(c.Value)
	}
	return c.Value
}

var funcs = htmltemplate.FuncMap{
	"shortURL": shortURL,
	"display":  display,
}

func mustParse(id, text string) *htmltemplate.Template {
	return htmltemplate.Must(htmltemplate.New(id).Funcs(funcs).Parse(text))
}

var renderers = map[string]*htmltemplate.Template{
	"modern":    mustParse("modern", modernHTML),
	"minimal":   mustParse("minimal", minimalHTML),
	"classic":   mustParse("classic", classicHTML),
	"creative":  mustParse("creative", creativeHTML),
	"executive": mustParse("executive", executiveHTML),
}

// Render produces the self-contained markup for one template. If accent is
// empty the template's catalog accent is used.
func Render(templateID string, doc model.Document, accent string) (string, error) {
	t, err := ByID(templateID)
	if err != nil {
		return "", err
	}
	if accent == "" {
		accent = t.AccentColor
	}
	tpl := renderers[templateID]

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<div id=%q data-template=%q>`, PreviewRootID, templateID)
	if err := tpl.Execute(&buf, buildView(doc, accent)); err != nil {
		return "", fmt.Errorf("render %s: %w", templateID, err)
	}
	buf.WriteString(`</div>`)
	return buf.String(), nil
}
