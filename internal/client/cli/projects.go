package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

func (a *App) ListProjects(ctx context.Context) error {
	if !a.enter(ctx, ProjectsPage) {
		return nil
	}
	if !a.projects.Fetch(ctx) {
		return errors.New(a.projects.Error())
	}
	printProjects(a.projects.Projects(), a.portfolio.ImageURL)
	return nil
}

func (a *App) AddProject(ctx context.Context) error {
	if !a.enter(ctx, ProjectsPage) {
		return nil
	}
	in, closer, err := a.readProject(models.Project{})
	if err != nil {
		return err
	}
	defer closer.Close()

	if !a.projects.Add(ctx, in) {
		return errors.New(a.projects.Error())
	}
	printlnFn("Project added.")
	printProjects(a.projects.Projects(), a.portfolio.ImageURL)
	return nil
}

func (a *App) EditProject(ctx context.Context, id int64) error {
	if !a.enter(ctx, ProjectsPage) {
		return nil
	}
	current, ok := a.projects.Get(id)
	if !ok {
		if !a.projects.Fetch(ctx) {
			return errors.New(a.projects.Error())
		}
		if current, ok = a.projects.Get(id); !ok {
			return fmt.Errorf("project %d not found", id)
		}
	}

	in, closer, err := a.readProject(current)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !a.projects.Update(ctx, id, in) {
		return errors.New(a.projects.Error())
	}
	printlnFn("Project updated.")
	return nil
}

func (a *App) DeleteProject(ctx context.Context, id int64) error {
	if !a.enter(ctx, ProjectsPage) {
		return nil
	}
	if !a.projects.Delete(ctx, id) {
		return errors.New(a.projects.Error())
	}
	printlnFn("Project deleted.")
	return nil
}

// readProject prompts for project fields, defaulting to current.
func (a *App) readProject(current models.Project) (models.ProjectInput, io.Closer, error) {
	var (
		in  models.ProjectInput
		err error
	)
	if in.Name, err = GetTextWithDefault(a.reader, "Project name", current.Name, a.out); err != nil {
		return in, nil, err
	}
	if in.DemoURL, err = GetTextWithDefault(a.reader, "Demo URL", current.DemoURL, a.out); err != nil {
		return in, nil, err
	}
	if in.RepoURL, err = GetTextWithDefault(a.reader, "Repository URL", current.RepoURL, a.out); err != nil {
		return in, nil, err
	}
	if current.Description == "" {
		in.Description, err = getMultiline(a.reader, "Description", a.out)
	} else {
		in.Description, err = GetTextWithDefault(a.reader, "Description", current.Description, a.out)
	}
	if err != nil {
		return in, nil, err
	}
	if in.Name == "" {
		return in, nil, errors.New("project name is required")
	}

	path, err := getSimpleText(a.reader, "Image file (empty for none)", a.out)
	if err != nil {
		return in, nil, err
	}
	upload, closer, err := openUpload(path)
	if err != nil {
		return in, nil, err
	}
	in.Image = upload
	return in, closer, nil
}

func printProjects(projects []models.Project, imageURL func(string) string) {
	if len(projects) == 0 {
		printlnFn("No projects yet.")
		return
	}
	for _, p := range projects {
		printlnFn(fmt.Sprintf("[%d] %s", p.ID, p.Name))
		if p.Description != "" {
			printlnFn("    " + p.Description)
		}
		if p.DemoURL != "" {
			printlnFn("    demo:  " + p.DemoURL)
		}
		if p.RepoURL != "" {
			printlnFn("    repo:  " + p.RepoURL)
		}
		if p.Image != "" {
			printlnFn("    image: " + imageURL(p.Image))
		}
	}
}
