package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const (
	MsgFetchProjectsFailed = "Failed to fetch projects"
	MsgAddProjectFailed    = "Failed to add project"
	MsgUpdateProjectFailed = "Failed to update project"
	MsgDeleteProjectFailed = "Failed to delete project"
)

// ProjectStore holds the project list of the signed-in user. The list only
// changes after the service confirms a call; overlapping calls are not
// serialized and the last reply wins.
type ProjectStore interface {
	Fetch(ctx context.Context) bool
	Add(ctx context.Context, in models.ProjectInput) bool
	Update(ctx context.Context, id int64, in models.ProjectInput) bool
	Delete(ctx context.Context, id int64) bool
	Projects() []models.Project
	Get(id int64) (models.Project, bool)

	Loading() bool
	Error() string
	ClearError()
}

type projectStore struct {
	state
	client client.Client
	auth   Authenticator
	log    logging.Logger

	projects []models.Project
}

func NewProjectStore(c client.Client, auth Authenticator, log logging.Logger) ProjectStore {
	if log == nil {
		log = logging.Nop()
	}
	return &projectStore{client: c, auth: auth, log: log, projects: []models.Project{}}
}

func (s *projectStore) Fetch(ctx context.Context) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.GetProjects(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetch projects failed", "error", err)
		s.finish(displayError(res, MsgFetchProjectsFailed))
		return false
	}

	s.mu.Lock()
	s.projects = slices.Clone(res.Data)
	if s.projects == nil {
		s.projects = []models.Project{}
	}
	s.mu.Unlock()

	s.finish("")
	return true
}

func (s *projectStore) Add(ctx context.Context, in models.ProjectInput) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.AddProject(ctx, in)
	if err != nil {
		s.log.Warn(ctx, "add project failed", "error", err)
		s.finish(displayError(res, MsgAddProjectFailed))
		return false
	}

	p := fillFromInput(res.Data, in)
	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	s.log.Info(ctx, "project added", "project_id", p.ID)
	s.finish("")
	return true
}

func (s *projectStore) Update(ctx context.Context, id int64, in models.ProjectInput) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.UpdateProject(ctx, id, in)
	if err != nil {
		s.log.Warn(ctx, "update project failed", "project_id", id, "error", err)
		s.finish(displayError(res, MsgUpdateProjectFailed))
		return false
	}

	p := fillFromInput(res.Data, in)
	if p.ID == 0 {
		p.ID = id
	}
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.projects[i] = p
	}
	s.mu.Unlock()

	s.finish("")
	return true
}

func (s *projectStore) Delete(ctx context.Context, id int64) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.DeleteProject(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "delete project failed", "project_id", id, "error", err)
		s.finish(displayError(res, MsgDeleteProjectFailed))
		return false
	}

	s.mu.Lock()
	s.projects = slices.DeleteFunc(s.projects, func(p models.Project) bool { return p.ID == id })
	s.mu.Unlock()

	s.finish("")
	return true
}

// indexOf must be called with s.mu held.
func (s *projectStore) indexOf(id int64) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool { return p.ID == id })
}

func (s *projectStore) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

func (s *projectStore) Get(id int64) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.projects[i], true
	}
	return models.Project{}, false
}

// fillFromInput completes a reply that echoes only part of the project.
func fillFromInput(p models.Project, in models.ProjectInput) models.Project {
	if p.Name == "" {
		p.Name = in.Name
	}
	if p.DemoURL == "" {
		p.DemoURL = in.DemoURL
	}
	if p.RepoURL == "" {
		p.RepoURL = in.RepoURL
	}
	if p.Description == "" {
		p.Description = in.Description
	}
	return p
}
