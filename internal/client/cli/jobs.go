package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

// Home prints the most recent active postings.
func (a *App) Home(ctx context.Context, args []string) error {
	n := a.config.JobsOnHome
	jobs, err := a.jobService.List(ctx, models.JobFilters{Status: models.JobStatusActive, Limit: n})
	if err != nil {
		a.println("Failed to load recent jobs. Please try again later.")
		a.log.Debug(ctx, "home jobs", "error", err)
		return err
	}

	if len(jobs) > n {
		jobs = jobs[:n]
	}
	if len(jobs) == 0 {
		a.println("No recent jobs.")
		return nil
	}

	a.println("Recent jobs:")
	for _, j := range jobs {
		a.println("  " + j.String())
	}
	return nil
}

func (a *App) Jobs(ctx context.Context, args []string) error {
	filters := models.JobFilters{Search: strings.Join(args, " ")}

	jobs, err := a.jobService.List(ctx, filters)
	if err != nil {
		return a.fail(ctx, err)
	}
	if len(jobs) == 0 {
		a.println("No jobs found.")
		return nil
	}
	for _, j := range jobs {
		a.println(j)
	}
	return nil
}

func (a *App) Job(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("job <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return a.fail(ctx, err)
	}

	j, err := a.jobService.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.println(j)
	if j.Description != "" {
		a.println("\n" + j.Description)
	}
	if j.Requirements != "" {
		a.println("\nRequirements:\n" + j.Requirements)
	}
	if j.ExperienceRequired > 0 {
		a.printf("Experience: %d+ years\n", j.ExperienceRequired)
	}
	if len(j.SkillsRequired) > 0 {
		names := make([]string, 0, len(j.SkillsRequired))
		for _, s := range j.SkillsRequired {
			names = append(names, s.Name)
		}
		a.println("Skills: " + strings.Join(names, ", "))
	}
	return nil
}

// AddJob prompts for a posting and publishes it as active.
func (a *App) AddJob(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var job models.Job
	var err error

	for _, p := range []struct {
		prompt string
		dst    *string
	}{
		{"Title", &job.Title},
		{"Company", &job.Company},
		{"Location", &job.Location},
	} {
		if *p.dst, err = GetSimpleText(a.reader, p.prompt, a.out); err != nil {
			return a.fail(ctx, err)
		}
	}

	if job.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if job.Requirements, err = GetMultiline(a.reader, "Requirements", a.out); err != nil {
		return a.fail(ctx, err)
	}

	years, err := GetSimpleText(a.reader, "Years of experience required", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if years != "" {
		if job.ExperienceRequired, err = strconv.Atoi(years); err != nil {
			return a.fail(ctx, err)
		}
	}

	skills, err := GetSimpleText(a.reader, "Skill ids, space separated (optional)", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if job.SkillIDs, err = parseIDs(strings.Fields(skills)); err != nil {
		return a.fail(ctx, err)
	}

	job.Status = models.JobStatusActive

	created, err := a.jobService.Create(ctx, job)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.println("Created " + created.String())
	return nil
}

func (a *App) Skills(ctx context.Context, args []string) error {
	skills, err := a.skillService.List(ctx, strings.Join(args, " "))
	if err != nil {
		return a.fail(ctx, err)
	}
	for _, s := range skills {
		kind := "soft"
		if s.IsTechnical {
			kind = "technical"
		}
		a.printf("#%d %s (%s)\n", s.ID, s.Name, kind)
	}
	return nil
}
