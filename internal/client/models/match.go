package models

import "fmt"

// Match scores how well a resume fits a job.
type Match struct {
	ID                        int64   `json:"id,omitempty"`
	Resume                    int64   `json:"resume"`
	Job                       int64   `json:"job"`
	ResumeTitle               string  `json:"resume_title,omitempty"`
	JobTitle                  string  `json:"job_title,omitempty"`
	MatchScore                float64 `json:"match_score"`
	SkillMatchPercentage      float64 `json:"skill_match_percentage"`
	ExperienceMatchPercentage float64 `json:"experience_match_percentage"`
	Feedback                  string  `json:"feedback,omitempty"`
}

func (m Match) String() string {
	return fmt.Sprintf("%s <-> %s: %.2f%% (skills %.0f%%, experience %.0f%%)",
		m.ResumeTitle, m.JobTitle, m.MatchScore, m.SkillMatchPercentage, m.ExperienceMatchPercentage)
}
