package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

// ShowPortfolio prints the public portfolio of a user. No session needed.
func (a *App) ShowPortfolio(ctx context.Context, userID int64) error {
	a.nav.Navigate(fmt.Sprintf("%s/%d", PortfolioPage, userID))

	if !a.portfolio.Fetch(ctx, userID) {
		return errors.New(a.portfolio.Error())
	}
	p := a.portfolio.Portfolio()
	printlnFn(p.User.Name)
	if p.User.JobTitle != "" {
		printlnFn(p.User.JobTitle)
	}
	if p.User.Bio != "" {
		printlnFn(p.User.Bio)
	}
	if p.User.ProfileImage != "" {
		printlnFn("Image:", a.portfolio.ImageURL(p.User.ProfileImage))
	}
	printlnFn()
	printProjects(p.Projects, a.portfolio.ImageURL)
	return nil
}

// Contact sends a message to the owner of a portfolio.
func (a *App) Contact(ctx context.Context, userID int64) error {
	var (
		msg models.ContactMessage
		err error
	)
	if msg.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if msg.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if msg.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	text, ok := a.portfolio.SendContact(ctx, userID, msg)
	if !ok {
		return errors.New(text)
	}
	printlnFn(text)
	return nil
}
