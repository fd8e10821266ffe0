package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
)

func (a *App) Resumes(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	list, err := a.resumeService.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	if len(list) == 0 {
		a.println("No resumes yet. Use 'upload <file>' to add one.")
		return nil
	}
	for _, r := range list {
		a.println(r)
	}
	return nil
}

// Upload sends a resume file and immediately asks the backend to parse it.
// A failed parse keeps the upload; the user can run 'parse' later.
func (a *App) Upload(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return a.usage("upload <file>")
	}
	path := strings.Join(args, " ")

	title, err := GetSimpleText(a.reader, "Resume title (default: "+filepath.Base(path)+")", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	r, err := a.resumeService.Upload(ctx, title, path)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.println("Resume uploaded successfully! Starting to parse...")

	parsed, err := a.resumeService.Parse(ctx, r.ID)
	if err != nil {
		a.println("Resume uploaded but failed to parse. You can try 'parse " + strconv.FormatInt(r.ID, 10) + "' later.")
		a.log.Debug(ctx, "parse after upload", "error", err)
		return err
	}
	a.println("Resume uploaded and parsed successfully!")
	a.println(parsed)
	return nil
}

func (a *App) Parse(ctx context.Context, args []string) error {
	id, err := a.resumeArg(ctx, args, "parse <resumeID>")
	if err != nil {
		return err
	}

	r, err := a.resumeService.Parse(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.println(r)
	for _, s := range r.Skills {
		a.println("  skill: " + s.Name)
	}
	for _, e := range r.Experience {
		a.printf("  experience: %s at %s (%s - %s)\n", e.Title, e.Company, e.StartDate, endOrPresent(e.EndDate, e.IsCurrent))
	}
	for _, e := range r.Education {
		a.printf("  education: %s, %s (%s)\n", e.Degree, e.Institution, e.FieldOfStudy)
	}
	return nil
}

func (a *App) Feedback(ctx context.Context, args []string) error {
	id, err := a.resumeArg(ctx, args, "feedback <resumeID>")
	if err != nil {
		return err
	}

	fb, err := a.resumeService.GenerateFeedback(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	for _, s := range []struct{ name, text string }{
		{"Skill gaps", fb.SkillGaps},
		{"Formatting", fb.FormattingSuggestions},
		{"Keywords", fb.KeywordOptimization},
		{"Overall", fb.OverallSuggestions},
	} {
		if s.text != "" {
			a.printf("%s:\n%s\n\n", s.name, s.text)
		}
	}
	return nil
}

func (a *App) Match(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return a.usage("match <resumeID> <jobID>...")
	}

	ids, err := parseIDs(args)
	if err != nil {
		return a.fail(ctx, err)
	}

	matches, err := a.resumeService.MatchJobs(ctx, ids[0], ids[1:])
	if err != nil {
		return a.fail(ctx, err)
	}
	for _, m := range matches {
		a.println(m)
	}
	return nil
}

func (a *App) Matches(ctx context.Context, args []string) error {
	id, err := a.resumeArg(ctx, args, "matches <resumeID>")
	if err != nil {
		return err
	}

	matches, err := a.resumeService.JobMatches(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	if len(matches) == 0 {
		a.println("No matches yet. Use 'match <resumeID> <jobID>...'.")
		return nil
	}
	for _, m := range matches {
		a.println(m)
	}
	return nil
}

func (a *App) resumeArg(ctx context.Context, args []string, form string) (int64, error) {
	if err := a.requireLogin(); err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, a.usage(form)
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, a.fail(ctx, err)
	}
	return id, nil
}

func endOrPresent(end string, current bool) string {
	if current || end == "" {
		return "present"
	}
	return end
}
