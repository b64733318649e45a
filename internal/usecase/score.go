package usecase

import (
	"strings"
	"unicode/utf8"

	"resume-builder/internal/model"
)

// ATS readiness weights. Threshold predicates, not continuous measures: a
// fifth skill past the four-skill threshold changes nothing. The raw sum is
// 110 and the final score clamps to 100.
const (
	ScoreName          = 10
	ScoreSummary       = 15 // summary longer than SummaryMinChars characters
	ScoreEmail         = 10
	ScorePhone         = 5
	ScoreLinkedIn      = 5
	ScoreExperience    = 20 // at least one experience entry
	ScoreExpBullets    = 10 // at least one entry with two or more non-empty bullets
	ScoreEducation     = 15
	ScoreSkills        = 10 // at least SkillsMinCount skills
	ScoreProject       = 5
	ScoreCertificate   = 5
	SummaryMinChars    = 80
	SkillsMinCount     = 4
	ExpBulletsMinCount = 2
)

// Score estimates how well the document would survive an applicant tracking
// system. Pure, total, deterministic; guidance only, never a validation gate.
func Score(doc model.Document) int {
	total := 0
	if doc.Personal.Name != "" {
		total += ScoreName
	}
	if utf8.RuneCountInString(doc.Personal.Summary) > SummaryMinChars {
		total += ScoreSummary
	}
	if doc.Personal.Email != "" {
		total += ScoreEmail
	}
	if doc.Personal.Phone != "" {
		total += ScorePhone
	}
	if doc.Personal.LinkedIn != "" {
		total += ScoreLinkedIn
	}
	if len(doc.Experience) > 0 {
		total += ScoreExperience
	}
	if hasDetailedExperience(doc.Experience) {
		total += ScoreExpBullets
	}
	if len(doc.Education) > 0 {
		total += ScoreEducation
	}
	if len(doc.Skills) >= SkillsMinCount {
		total += ScoreSkills
	}
	if len(doc.Projects) > 0 {
		total += ScoreProject
	}
	if len(doc.Certificates) > 0 {
		total += ScoreCertificate
	}
	if total > 100 {
		total = 100
	}
	return total
}

func hasDetailedExperience(entries []model.ExperienceEntry) bool {
	for _, e := range entries {
		n := 0
		for _, b := range e.Bullets {
			if strings.TrimSpace(b) != "" {
				n++
			}
		}
		if n >= ExpBulletsMinCount {
			return true
		}
	}
	return false
}
