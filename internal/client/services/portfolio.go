package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const (
	MsgFetchPortfolioFailed = "Failed to load portfolio"
	MsgContactFailed        = "Failed to send message"
	MsgContactSent          = "Message sent"
)

// PortfolioStore serves the public portfolio page. It needs no session.
type PortfolioStore interface {
	Fetch(ctx context.Context, userID int64) bool
	Portfolio() *models.Portfolio
	SendContact(ctx context.Context, userID int64, msg models.ContactMessage) (string, bool)
	ImageURL(filename string) string

	Loading() bool
	Error() string
	ClearError()
}

type portfolioStore struct {
	state
	client client.Client
	log    logging.Logger

	portfolio *models.Portfolio
}

func NewPortfolioStore(c client.Client, log logging.Logger) PortfolioStore {
	if log == nil {
		log = logging.Nop()
	}
	return &portfolioStore{client: c, log: log}
}

func (s *portfolioStore) Fetch(ctx context.Context, userID int64) bool {
	s.begin()
	res, err := s.client.GetPortfolio(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "fetch portfolio failed", "user_id", userID, "error", err)
		s.finish(displayError(res, MsgFetchPortfolioFailed))
		return false
	}

	p := res.Data
	if p.Projects == nil {
		p.Projects = []models.Project{}
	}
	s.mu.Lock()
	s.portfolio = &p
	s.mu.Unlock()

	s.finish("")
	return true
}

func (s *portfolioStore) Portfolio() *models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.portfolio == nil {
		return nil
	}
	p := *s.portfolio
	p.Projects = slices.Clone(s.portfolio.Projects)
	return &p
}

func (s *portfolioStore) SendContact(ctx context.Context, userID int64, msg models.ContactMessage) (string, bool) {
	s.begin()
	res, err := s.client.SendContactMessage(ctx, userID, msg)
	if err != nil {
		text := displayError(res, MsgContactFailed)
		s.finish(text)
		return text, false
	}
	s.finish("")
	return messageOr(res.Message, MsgContactSent), true
}

func (s *portfolioStore) ImageURL(filename string) string {
	return s.client.UploadURL(filename)
}
