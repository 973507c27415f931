package api

import (
	"context"
	"net/url"

	"github.com/voyage-travel/storefront/internal/models"
)

// TeamForm carries the admin team-member create/edit fields.
type TeamForm struct {
	Name  string
	Title string
	Image *Upload
}

func (f TeamForm) values() url.Values {
	v := url.Values{}
	v.Set("name", f.Name)
	v.Set("title", f.Title)
	return v
}

// Teams lists the team members shown on the about page.
func (c *Client) Teams(ctx context.Context) ([]models.TeamMember, error) {
	var out []models.TeamMember
	if err := c.get(ctx, "/teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTeamMember submits a new team member as multipart form data.
func (c *Client) CreateTeamMember(ctx context.Context, form TeamForm) (models.TeamMember, error) {
	var out models.TeamMember
	err := c.postMultipart(ctx, "/teams/add", form.values(), form.Image, &out)
	return out, err
}

// UpdateTeamMember submits edited fields for an existing team member.
func (c *Client) UpdateTeamMember(ctx context.Context, id string, form TeamForm) (models.TeamMember, error) {
	var out models.TeamMember
	err := c.postMultipart(ctx, "/teams/update/"+url.PathEscape(id), form.values(), form.Image, &out)
	return out, err
}

// DeleteTeamMember removes a team member.
func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.del(ctx, "/teams/"+url.PathEscape(id))
}
