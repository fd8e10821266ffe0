package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ShowsRecentActiveJobs(t *testing.T) {
	a := newTestApp()
	a.config.JobsOnHome = 2
	a.jobs.list = []models.Job{
		{ID: 1, Title: "Go dev", Company: "Acme", Location: "Remote", Status: models.JobStatusActive},
		{ID: 2, Title: "SRE", Company: "Initech", Location: "Riga", Status: models.JobStatusActive},
		{ID: 3, Title: "QA", Company: "Hooli", Location: "Oslo", Status: models.JobStatusActive},
	}

	require.NoError(t, a.Home(context.Background(), nil))

	assert.Equal(t, models.JobFilters{Status: models.JobStatusActive, Limit: 2}, a.jobs.filters)
	out := a.out.String()
	assert.Contains(t, out, "#1 Go dev at Acme")
	assert.Contains(t, out, "#2 SRE at Initech")
	assert.NotContains(t, out, "#3 QA")
}

func TestHome_Failure(t *testing.T) {
	a := newTestApp()
	a.jobs.err = client.ErrUnavailable

	require.Error(t, a.Home(context.Background(), nil))
	assert.Contains(t, a.out.String(), "Failed to load recent jobs")
}

func TestJobs_Search(t *testing.T) {
	a := newTestApp()
	a.jobs.list = []models.Job{{ID: 5, Title: "Go dev"}}

	require.NoError(t, a.Jobs(context.Background(), []string{"go", "dev"}))
	assert.Equal(t, "go dev", a.jobs.filters.Search)
	assert.Contains(t, a.out.String(), "#5 Go dev")

	a.jobs.list = nil
	require.NoError(t, a.Jobs(context.Background(), nil))
	assert.Contains(t, a.out.String(), "No jobs found.")
}

func TestJob_DetailsAndErrors(t *testing.T) {
	ctx := context.Background()
	a := newTestApp()

	require.ErrorIs(t, a.Job(ctx, nil), errUsage)
	require.Error(t, a.Job(ctx, []string{"abc"}))

	a.jobs.job = &models.Job{ID: 4, Title: "Go dev", Description: "Build things", ExperienceRequired: 3,
		SkillsRequired: []models.Skill{{Name: "Go"}, {Name: "SQL"}}}
	require.NoError(t, a.Job(ctx, []string{"4"}))
	out := a.out.String()
	assert.Contains(t, out, "Build things")
	assert.Contains(t, out, "Experience: 3+ years")
	assert.Contains(t, out, "Skills: Go, SQL")

	a.jobs.err = &client.HTTPError{StatusCode: 404}
	require.ErrorIs(t, a.Job(ctx, []string{"9"}), client.ErrNotFound)
	assert.Contains(t, a.out.String(), "Not found.")
}

func TestAddJob(t *testing.T) {
	a := newTestApp(
		"Go dev", "Acme", "Remote",
		"Build APIs", "and tools", "",
		"Go", "",
		"3",
		"1 2",
	)

	require.ErrorIs(t, a.AddJob(context.Background(), nil), errNotLoggedIn)

	a.setLoggedIn("recruiter@example.com")
	require.NoError(t, a.AddJob(context.Background(), nil))

	assert.Equal(t, models.Job{
		Title: "Go dev", Company: "Acme", Location: "Remote",
		Description: "Build APIs\nand tools", Requirements: "Go",
		ExperienceRequired: 3, SkillIDs: []int64{1, 2}, Status: models.JobStatusActive,
	}, a.jobs.created)
	assert.Contains(t, a.out.String(), "Created #100 Go dev")
}

func TestSkills(t *testing.T) {
	a := newTestApp()
	a.skills.list = []models.Skill{{ID: 1, Name: "Go", IsTechnical: true}, {ID: 2, Name: "Teamwork"}}

	require.NoError(t, a.Skills(context.Background(), []string{"go"}))
	assert.Equal(t, "go", a.skills.search)
	assert.Contains(t, a.out.String(), "#1 Go (technical)")
	assert.Contains(t, a.out.String(), "#2 Teamwork (soft)")
}
