package models

// Skill is a named competency referenced by resumes and jobs.
type Skill struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	IsTechnical bool   `json:"is_technical"`
}
