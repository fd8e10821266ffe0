package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const jobsPath = "/resume/jobs/"

// JobService reads and manages job postings.
type JobService interface {
	List(ctx context.Context, filters models.JobFilters) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, job models.Job) (*models.Job, error)
	Update(ctx context.Context, id int64, job models.Job) (*models.Job, error)
	MatchResumes(ctx context.Context, id int64, resumeIDs []int64) ([]models.Match, error)
	ResumeMatches(ctx context.Context, id int64) ([]models.Match, error)
}

type jobService struct {
	client client.Client
}

func NewJobService(c client.Client) JobService {
	return &jobService{client: c}
}

func jobPath(id int64, action string) string {
	if action == "" {
		return fmt.Sprintf("%s%d/", jobsPath, id)
	}
	return fmt.Sprintf("%s%d/%s/", jobsPath, id, action)
}

func (s *jobService) List(ctx context.Context, filters models.JobFilters) ([]models.Job, error) {
	params := url.Values{}
	for k, v := range filters.Params() {
		params.Set(k, v)
	}

	var out []models.Job
	if err := s.client.Get(ctx, jobsPath, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	var out models.Job
	if err := s.client.Get(ctx, jobPath(id, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *jobService) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	var out models.Job
	if err := s.client.Post(ctx, jobsPath, job, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return &out, nil
}

func (s *jobService) Update(ctx context.Context, id int64, job models.Job) (*models.Job, error) {
	var out models.Job
	if err := s.client.Put(ctx, jobPath(id, ""), job, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return &out, nil
}

func (s *jobService) MatchResumes(ctx context.Context, id int64, resumeIDs []int64) ([]models.Match, error) {
	var out []models.Match
	body := map[string][]int64{"resume_ids": resumeIDs}
	if err := s.client.Post(ctx, jobPath(id, "match_resumes"), body, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return out, nil
}

func (s *jobService) ResumeMatches(ctx context.Context, id int64) ([]models.Match, error) {
	var out []models.Match
	if err := s.client.Get(ctx, jobPath(id, "resume_matches"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
