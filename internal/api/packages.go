package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/voyage-travel/storefront/internal/models"
)

// PackageForm carries the admin package create/edit fields. Image is nil
// when the admin keeps the existing picture.
type PackageForm struct {
	Title       string
	Location    string
	Price       float64
	Duration    string
	Rating      float64
	Type        string
	Description string
	Highlights  []string
	Image       *Upload
}

func (f PackageForm) values() url.Values {
	v := url.Values{}
	v.Set("title", f.Title)
	v.Set("location", f.Location)
	v.Set("price", strconv.FormatFloat(f.Price, 'f', -1, 64))
	v.Set("duration", f.Duration)
	v.Set("rating", strconv.FormatFloat(f.Rating, 'f', -1, 64))
	v.Set("type", f.Type)
	v.Set("description", f.Description)
	for _, h := range f.Highlights {
		v.Add("highlights", h)
	}
	return v
}

// Packages lists the full catalog.
func (c *Client) Packages(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	if err := c.get(ctx, "/packages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePackage submits a new package as multipart form data and returns
// the server-assigned record.
func (c *Client) CreatePackage(ctx context.Context, form PackageForm) (models.Package, error) {
	var out models.Package
	err := c.postMultipart(ctx, "/packages/add", form.values(), form.Image, &out)
	return out, err
}

// UpdatePackage submits edited fields for an existing package and returns
// the server's updated record.
func (c *Client) UpdatePackage(ctx context.Context, id string, form PackageForm) (models.Package, error) {
	var out models.Package
	err := c.postMultipart(ctx, "/packages/update/"+url.PathEscape(id), form.values(), form.Image, &out)
	return out, err
}

// DeletePackage removes a package.
func (c *Client) DeletePackage(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete package: empty id")
	}
	return c.del(ctx, "/packages/"+url.PathEscape(id))
}
