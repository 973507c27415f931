package api

import (
	"context"
	"net/url"

	"github.com/voyage-travel/storefront/internal/models"
)

// ProfileForm carries the profile edit fields. Photo is nil when the user
// keeps the current picture.
type ProfileForm struct {
	Name  string
	Bio   string
	Photo *Upload
}

// Users lists every registered account (admin).
func (c *Client) Users(ctx context.Context) ([]models.UserAccount, error) {
	var out []models.UserAccount
	if err := c.get(ctx, "/users/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleUserBlock flips the blocked flag on an account and returns the
// updated record.
func (c *Client) ToggleUserBlock(ctx context.Context, id string) (models.UserAccount, error) {
	var out models.UserAccount
	err := c.postJSON(ctx, "/users/toggle-block/"+url.PathEscape(id), struct{}{}, &out)
	return out, err
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.get(ctx, "/profile", &out)
	return out, err
}

// UpdateProfile submits profile edits as multipart form data and returns
// the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, form ProfileForm) (models.Profile, error) {
	v := url.Values{}
	v.Set("name", form.Name)
	v.Set("bio", form.Bio)
	var out models.Profile
	err := c.postMultipart(ctx, "/profile/update", v, form.Photo, &out)
	return out, err
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.postJSON(ctx, "/profile/change-password", body, nil)
}
