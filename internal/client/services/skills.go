package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const skillsPath = "/resume/skills/"

type SkillService interface {
	List(ctx context.Context, search string) ([]models.Skill, error)
	Create(ctx context.Context, skill models.Skill) (*models.Skill, error)
}

type skillService struct {
	client client.Client
}

func NewSkillService(c client.Client) SkillService {
	return &skillService{client: c}
}

func (s *skillService) List(ctx context.Context, search string) ([]models.Skill, error) {
	var params url.Values
	if search != "" {
		params = url.Values{"search": {search}}
	}

	var out []models.Skill
	if err := s.client.Get(ctx, skillsPath, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *skillService) Create(ctx context.Context, skill models.Skill) (*models.Skill, error) {
	var out models.Skill
	if err := s.client.Post(ctx, skillsPath, skill, &out); err != nil {
		return nil, client.AsValidation(err)
	}
	return &out, nil
}
