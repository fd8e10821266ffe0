package models

import (
	"fmt"
	"time"
)

// Resume is an uploaded CV together with the data the backend extracted
// from it.
type Resume struct {
	ID            int64        `json:"id,omitempty"`
	User          int64        `json:"user,omitempty"`
	Title         string       `json:"title"`
	File          string       `json:"file,omitempty"`
	ContentType   string       `json:"content_type,omitempty"`
	IsParsed      bool         `json:"is_parsed"`
	RawText       string       `json:"raw_text,omitempty"`
	Skills        []Skill      `json:"skills,omitempty"`
	Education     []Education  `json:"education,omitempty"`
	Experience    []Experience `json:"experience,omitempty"`
	OverallRating float64      `json:"overall_rating"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
	UpdatedAt     *time.Time   `json:"updated_at,omitempty"`
}

func (r Resume) String() string {
	parsed := "not parsed"
	if r.IsParsed {
		parsed = fmt.Sprintf("parsed, rating %.1f/10", r.OverallRating)
	}
	return fmt.Sprintf("#%d %s (%s)", r.ID, r.Title, parsed)
}

type Education struct {
	ID           int64  `json:"id,omitempty"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	IsCurrent    bool   `json:"is_current"`
	Description  string `json:"description,omitempty"`
}

type Experience struct {
	ID          int64   `json:"id,omitempty"`
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	Location    string  `json:"location,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	IsCurrent   bool    `json:"is_current"`
	Description string  `json:"description,omitempty"`
	SkillsUsed  []Skill `json:"skills_used,omitempty"`
}

// Feedback is the AI-generated review of a resume.
type Feedback struct {
	ID                    int64      `json:"id,omitempty"`
	Resume                int64      `json:"resume"`
	ResumeTitle           string     `json:"resume_title,omitempty"`
	SkillGaps             string     `json:"skill_gaps"`
	FormattingSuggestions string     `json:"formatting_suggestions"`
	KeywordOptimization   string     `json:"keyword_optimization"`
	OverallSuggestions    string     `json:"overall_suggestions"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
}
