package models

import (
	"fmt"
	"strconv"
	"time"
)

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Job is a posting created by a recruiter.
type Job struct {
	ID                 int64      `json:"id,omitempty"`
	Recruiter          int64      `json:"recruiter,omitempty"`
	Title              string     `json:"title"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	Status             JobStatus  `json:"status,omitempty"`
	SkillsRequired     []Skill    `json:"skills_required,omitempty"`
	SkillIDs           []int64    `json:"skill_ids,omitempty"`
	ExperienceRequired int        `json:"experience_required"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

func (j Job) String() string {
	return fmt.Sprintf("#%d %s at %s (%s) [%s]", j.ID, j.Title, j.Company, j.Location, j.Status)
}

// JobFilters narrows GET /resume/jobs/. Zero values are omitted.
type JobFilters struct {
	Search   string
	Status   JobStatus
	Location string
	Company  string
	Limit    int
}

// Params renders the filters as query parameters.
func (f JobFilters) Params() map[string]string {
	p := map[string]string{}
	if f.Search != "" {
		p["search"] = f.Search
	}
	if f.Status != "" {
		p["status"] = string(f.Status)
	}
	if f.Location != "" {
		p["location"] = f.Location
	}
	if f.Company != "" {
		p["company"] = f.Company
	}
	if f.Limit > 0 {
		p["limit"] = strconv.Itoa(f.Limit)
	}
	return p
}
