package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/session"
)

func TestClient_AttachesSessionToken(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-auth-token")
		assert.Equal(t, "/api/packages", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	ctx := session.NewContext(context.Background(), session.State{
		Role:  session.RoleUser,
		Token: "tok-123",
	})
	_, err := c.Packages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", gotToken)
}

func TestClient_NoTokenForAnonymous(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Auth-Token"]
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.Packages(context.Background())
	require.NoError(t, err)
	assert.False(t, sawHeader)
}

func TestClient_StatusErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.LoginUser(context.Background(), "a@b.c", "pw")
	require.Error(t, err)

	var apiErr *StatusError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_StatusErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.Packages(context.Background())

	var apiErr *StatusError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "travel api: 500", apiErr.Error())
}

func TestCreatePackage_MultipartBody(t *testing.T) {
	type part struct {
		values map[string][]string
		file   string
		data   string
	}
	var got part
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/packages/add", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])
		got.values = map[string][]string{}
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			b, err := io.ReadAll(p)
			require.NoError(t, err)
			if p.FileName() != "" {
				got.file = p.FileName()
				got.data = string(b)
				continue
			}
			got.values[p.FormName()] = append(got.values[p.FormName()], string(b))
		}
		w.Write([]byte(`{"_id":"p1","title":"Goa Getaway"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	created, err := c.CreatePackage(context.Background(), PackageForm{
		Title:      "Goa Getaway",
		Location:   "Goa",
		Price:      12500,
		Duration:   "4 days",
		Type:       "Beach",
		Highlights: []string{"Sunset cruise", "Spice farm"},
		Image: &Upload{
			Field:   "image",
			Name:    "beach.jpg",
			Content: strings.NewReader("fake-jpeg-bytes"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)

	assert.Equal(t, []string{"Goa Getaway"}, got.values["title"])
	assert.Equal(t, []string{"12500"}, got.values["price"])
	assert.Equal(t, []string{"Sunset cruise", "Spice farm"}, got.values["highlights"],
		"each highlight must be its own repeated field")
	assert.Equal(t, "beach.jpg", got.file)
	assert.Equal(t, "fake-jpeg-bytes", got.data)
}

func TestDeletePackage(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	require.NoError(t, c.DeletePackage(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/packages/p1", gotPath)

	assert.Error(t, c.DeletePackage(context.Background(), ""))
}
