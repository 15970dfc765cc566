package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jkimani/safarihub/internal/filex"
	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/view"
)

// maxPictureSize caps uploads client-side; the backend enforces its
// own limit too.
const maxPictureSize = 5 << 20

// fetchProfile picks the role's profile endpoint.
func (a *App) fetchProfile(ctx context.Context) (models.Profile, error) {
	token := a.session.Token()
	switch view.Route(a.session.User()) {
	case view.AdminView:
		return a.api.AdminProfile(ctx, token)
	case view.GuideView:
		return a.api.GuideProfile(ctx, token)
	default:
		return a.api.TravelerProfile(ctx, token)
	}
}

// saveProfile picks the role's update endpoint.
func (a *App) saveProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	token := a.session.Token()
	switch view.Route(a.session.User()) {
	case view.AdminView:
		return a.api.UpdateAdminProfile(ctx, token, p)
	case view.GuideView:
		return a.api.UpdateGuideProfile(ctx, token, p)
	default:
		return a.api.UpdateTravelerProfile(ctx, token, p)
	}
}

// Profile prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.fetchProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Name:    %s\nEmail:   %s\nPhone:   %s\nCountry: %s\n",
		p.FullName, p.Email, p.Phone, p.Country)
	if p.Bio != "" {
		fmt.Printf("Bio:     %s\n", p.Bio)
	}
	if a.session.User() != nil && a.session.User().Role == models.RoleGuide {
		fmt.Printf("Languages:  %s\nExperience: %s\n", p.Languages, p.Experience)
	}
	return nil
}

// EditProfile fetches the profile, prompts for the editable fields
// (blank keeps the current value) and saves it back.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.fetchProfile(ctx)
	if err != nil {
		return err
	}

	edit := func(prompt, current string) (string, error) {
		s, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, current), os.Stdout)
		if err != nil {
			return "", err
		}
		if s == "" {
			return current, nil
		}
		return s, nil
	}

	if p.FullName, err = edit("Full name", p.FullName); err != nil {
		return err
	}
	if p.Phone, err = edit("Phone", p.Phone); err != nil {
		return err
	}
	if p.Country, err = edit("Country", p.Country); err != nil {
		return err
	}
	if p.Bio, err = edit("Bio", p.Bio); err != nil {
		return err
	}

	updated, err := a.saveProfile(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated for %s\n", updated.FullName)
	return nil
}

// UploadPicture reads an image file and posts it as the profile
// picture.
func (a *App) UploadPicture(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}
	data, err := filex.ReadLimited(path, maxPictureSize)
	if err != nil {
		return err
	}

	res, err := a.api.UploadProfilePicture(ctx, a.session.Token(), filepath.Base(path), data)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded: %s\n", res.URL)
	return nil
}
