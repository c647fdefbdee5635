package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

func (a *App) ShowProfile(ctx context.Context) error {
	if !a.enter(ctx, ProfilePage) {
		return nil
	}
	if !a.profile.Fetch(ctx) {
		return errors.New(a.profile.Error())
	}
	printProfile(a.profile.Profile(), a.portfolio.ImageURL)
	return nil
}

// EditProfile prompts for every field with the current value as default.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.enter(ctx, ProfilePage) {
		return nil
	}
	current := a.profile.Profile()
	if current == nil {
		if !a.profile.Fetch(ctx) {
			return errors.New(a.profile.Error())
		}
		current = a.profile.Profile()
	}

	in := models.ProfileInput{ProfileImage: current.ProfileImage}
	var err error
	if in.Name, err = GetTextWithDefault(a.reader, "Name", current.Name, a.out); err != nil {
		return err
	}
	if in.JobTitle, err = GetTextWithDefault(a.reader, "Job title", current.JobTitle, a.out); err != nil {
		return err
	}
	if in.Bio, err = GetTextWithDefault(a.reader, "Bio", current.Bio, a.out); err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Profile image file (empty to keep)", a.out)
	if err != nil {
		return err
	}

	upload, closer, err := openUpload(path)
	if err != nil {
		return err
	}
	defer closer.Close()
	in.Image = upload

	if !a.profile.Update(ctx, in) {
		return errors.New(a.profile.Error())
	}
	printlnFn("Profile updated.")
	printProfile(a.profile.Profile(), a.portfolio.ImageURL)
	return nil
}

func printProfile(p *models.Profile, imageURL func(string) string) {
	if p == nil {
		return
	}
	printlnFn("Name:     ", p.Name)
	printlnFn("Email:    ", p.Email)
	printlnFn("Job title:", p.JobTitle)
	printlnFn("Bio:      ", p.Bio)
	if p.ProfileImage != "" {
		printlnFn("Image:    ", imageURL(p.ProfileImage))
	}
}
