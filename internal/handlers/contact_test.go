package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-ai/website/internal/service"
)

func postForm(t *testing.T, app *fiber.App, values url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"company": {"Doe Plumbing"},
		"message": {"We miss too many calls."},
	}
}

func TestContactPageRendersFormAndBookingLink(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body, _ := get(t, deps.app, "/contact")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `<form method="post" action="/contact">`)
	assert.Contains(t, body, `https://cal.example.com/intro`)
	assert.Contains(t, body, `target="_blank"`)
}

func TestContactSubmitRelaysToEndpoint(t *testing.T) {
	var received string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		received = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer backend.Close()

	deps := newTestApp(t, service.NewContactClient(backend.URL), nil)

	status, body := postForm(t, deps.app, validForm())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "message received")
	assert.Contains(t, received, "jane@example.com")
	assert.Contains(t, received, `"id"`)
}

func TestContactSubmitFailureShowsRetryMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	deps := newTestApp(t, service.NewContactClient(backend.URL), nil)

	status, body := postForm(t, deps.app, validForm())
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body, "try again")
	assert.Contains(t, body, "hello@brightpathai.com")
}

func TestContactSubmitRejectsMissingFields(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	form := validForm()
	form.Del("email")
	status, body := postForm(t, deps.app, form)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "try again")
}

func TestContactSubmitWithoutEndpointStillAccepts(t *testing.T) {
	deps := newTestApp(t, nil, nil)

	status, body := postForm(t, deps.app, validForm())
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "message received")
}
