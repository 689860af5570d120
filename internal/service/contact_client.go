package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const contactTimeout = 10 * time.Second

// ContactSubmission is the payload relayed to the form-processing endpoint.
type ContactSubmission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// ContactClient relays contact form submissions to the external
// form-processing endpoint. Failures surface to the caller; by policy
// there is no automatic retry, the visitor is shown a retry message
// instead.
type ContactClient struct {
	client   *resty.Client
	endpoint string
}

// NewContactClient creates a client for the given endpoint URL.
func NewContactClient(endpoint string) *ContactClient {
	return &ContactClient{
		client:   resty.New().SetTimeout(contactTimeout),
		endpoint: endpoint,
	}
}

// Submit posts the submission as JSON. Any non-2xx status is an error.
func (c *ContactClient) Submit(ctx context.Context, sub ContactSubmission) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("failed to submit contact form %s: %w", sub.ID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("contact endpoint returned status %d for submission %s", resp.StatusCode(), sub.ID)
	}
	return nil
}
