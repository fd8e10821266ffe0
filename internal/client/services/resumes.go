package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/filex"
	"github.com/dmitrijs2005/jobboard/internal/netx"
)

const resumesPath = "/resume/resumes/"

var ErrEmptyTitle = errors.New("title is required")

// ResumeService manages the current user's resumes.
type ResumeService interface {
	List(ctx context.Context) ([]models.Resume, error)
	Get(ctx context.Context, id int64) (*models.Resume, error)
	Upload(ctx context.Context, title, filePath string) (*models.Resume, error)
	Parse(ctx context.Context, id int64) (*models.Resume, error)
	GenerateFeedback(ctx context.Context, id int64) (*models.Feedback, error)
	MatchJobs(ctx context.Context, id int64, jobIDs []int64) ([]models.Match, error)
	JobMatches(ctx context.Context, id int64) ([]models.Match, error)
}

type resumeService struct {
	client client.Client
}

func NewResumeService(c client.Client) ResumeService {
	return &resumeService{client: c}
}

func resumePath(id int64, action string) string {
	if action == "" {
		return fmt.Sprintf("%s%d/", resumesPath, id)
	}
	return fmt.Sprintf("%s%d/%s/", resumesPath, id, action)
}

func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := s.client.Get(ctx, resumesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *resumeService) Get(ctx context.Context, id int64) (*models.Resume, error) {
	var out models.Resume
	if err := s.client.Get(ctx, resumePath(id, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload sends the file at filePath as a new resume. The content type is
// taken from the file extension.
func (s *resumeService) Upload(ctx context.Context, title, filePath string) (*models.Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	up, err := filex.ReadUpload(filePath)
	if err != nil {
		return nil, err
	}

	form := &netx.MultipartForm{
		Fields:          map[string]string{"title": title, "content_type": up.ContentType},
		FileField:       "file",
		FileName:        up.Name,
		FileContentType: up.ContentType,
		File:            up.Data,
	}

	var out models.Resume
	if err := s.client.PostMultipart(ctx, resumesPath, form, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return &out, nil
}

func (s *resumeService) Parse(ctx context.Context, id int64) (*models.Resume, error) {
	var out models.Resume
	if err := s.client.Post(ctx, resumePath(id, "parse"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *resumeService) GenerateFeedback(ctx context.Context, id int64) (*models.Feedback, error) {
	var out models.Feedback
	if err := s.client.Post(ctx, resumePath(id, "generate_feedback"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *resumeService) MatchJobs(ctx context.Context, id int64, jobIDs []int64) ([]models.Match, error) {
	var out []models.Match
	body := map[string][]int64{"job_ids": jobIDs}
	if err := s.client.Post(ctx, resumePath(id, "match_jobs"), body, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return out, nil
}

func (s *resumeService) JobMatches(ctx context.Context, id int64) ([]models.Match, error) {
	var out []models.Match
	if err := s.client.Get(ctx, resumePath(id, "job_matches"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
