package model

// Go models for the structured resume document. Every list entry carries an
// opaque id minted once at creation; ids are never re-derived from content.

import "github.com/google/uuid"

type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

type ExperienceEntry struct {
	ID      string   `json:"id"`
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Current bool     `json:"current"`
	Bullets []string `json:"bullets"`
}

type EducationEntry struct {
	ID     string `json:"id"`
	School string `json:"school"`
	Degree string `json:"degree"`
	Field  string `json:"field"`
	Start  string `json:"start"`
	End    string `json:"end"`
	GPA    string `json:"gpa"`
}

type SkillEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ProjectEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	Link        string `json:"link"`
}

type CertificateEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Document is the aggregate root: the full structured content of one resume.
// Empty strings mean "absent"; there are no null fields.
type Document struct {
	Personal     Personal           `json:"personal"`
	Experience   []ExperienceEntry  `json:"experience"`
	Education    []EducationEntry   `json:"education"`
	Skills       []SkillEntry       `json:"skills"`
	Projects     []ProjectEntry     `json:"projects"`
	Certificates []CertificateEntry `json:"certificates"`
}

// NewID mints an opaque entry id.
func NewID() string { return uuid.New().String() }

// Default returns the seed document used when nothing has been persisted yet.
func Default() Document {
	return Document{
		Experience:   []ExperienceEntry{},
		Education:    []EducationEntry{},
		Skills:       []SkillEntry{},
		Projects:     []ProjectEntry{},
		Certificates: []CertificateEntry{},
	}
}

// ClampLevel bounds a skill level to [0,100].
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// Normalize mints ids for entries that are missing one and clamps skill
// levels. It mutates the document in place and is safe to call repeatedly.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Skills == nil {
		d.Skills = []SkillEntry{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	if d.Certificates == nil {
		d.Certificates = []CertificateEntry{}
	}
	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = NewID()
		}
		if d.Experience[i].Bullets == nil {
			d.Experience[i].Bullets = []string{}
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = NewID()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = NewID()
		}
		d.Skills[i].Level = ClampLevel(d.Skills[i].Level)
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = NewID()
		}
	}
	for i := range d.Certificates {
		if d.Certificates[i].ID == "" {
			d.Certificates[i].ID = NewID()
		}
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the live document.
func (d Document) Clone() Document {
	out := d
	out.Experience = make([]ExperienceEntry, len(d.Experience))
	for i, e := range d.Experience {
		e.Bullets = append([]string{}, e.Bullets...)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry{}, d.Education...)
	out.Skills = append([]SkillEntry{}, d.Skills...)
	out.Projects = append([]ProjectEntry{}, d.Projects...)
	out.Certificates = append([]CertificateEntry{}, d.Certificates...)
	return out
}

// IsEmpty reports whether the document carries no user content at all.
// Templates use this to decide when to show their default header affordance.
func (d Document) IsEmpty() bool {
	p := d.Personal
	if p.Name != "" || p.Title != "" || p.Email != "" || p.Phone != "" ||
		p.Location != "" || p.LinkedIn != "" || p.GitHub != "" ||
		p.Website != "" || p.Summary != "" {
		return false
	}
	return len(d.Experience) == 0 && len(d.Education) == 0 &&
		len(d.Skills) == 0 && len(d.Projects) == 0 && len(d.Certificates) == 0
}
