package services

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const (
	MsgFetchProfileFailed  = "Failed to fetch profile"
	MsgUpdateProfileFailed = "Failed to update profile"
)

// ProfileStore holds the last known profile of the signed-in user.
type ProfileStore interface {
	Fetch(ctx context.Context) bool
	Update(ctx context.Context, in models.ProfileInput) bool
	Profile() *models.Profile

	Loading() bool
	Error() string
	ClearError()
}

type profileStore struct {
	state
	client client.Client
	auth   Authenticator
	log    logging.Logger

	profile *models.Profile
}

// NewProfileStore builds a profile store. When auth is non-nil, calls made
// without a session fail locally with MsgNotAuthenticated.
func NewProfileStore(c client.Client, auth Authenticator, log logging.Logger) ProfileStore {
	if log == nil {
		log = logging.Nop()
	}
	return &profileStore{client: c, auth: auth, log: log}
}

func (s *profileStore) Fetch(ctx context.Context) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.GetProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetch profile failed", "error", err)
		s.finish(displayError(res, MsgFetchProfileFailed))
		return false
	}

	s.replace(res.Data)
	s.finish("")
	return true
}

func (s *profileStore) Update(ctx context.Context, in models.ProfileInput) bool {
	s.begin()
	if !gate(ctx, s.auth) {
		s.finish(MsgNotAuthenticated)
		return false
	}

	res, err := s.client.UpdateProfile(ctx, in)
	if err != nil {
		s.log.Warn(ctx, "update profile failed", "error", err)
		s.finish(displayError(res, MsgUpdateProfileFailed))
		return false
	}

	s.replace(res.Data)
	s.finish("")
	return true
}

func (s *profileStore) replace(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

// Profile returns a copy of the snapshot, or nil before the first fetch.
func (s *profileStore) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func gate(ctx context.Context, auth Authenticator) bool {
	return auth == nil || auth.IsAuthenticated(ctx)
}
