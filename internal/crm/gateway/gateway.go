// Package gateway is the HTTP client for the CRM facade. It submits the wire
// payloads built by the crm package unchanged and decodes the facade's JSON
// responses; all mapping happens before a payload reaches this client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"ftts-booking/internal/crm"
	dErrors "ftts-booking/pkg/domain-errors"
	"ftts-booking/pkg/platform/sentinel"
)

// Client talks to the CRM facade over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client instance.
type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New constructs a CRM gateway client.
func New(baseURL, token string, timeout time.Duration, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("crm base URL is required")
	}
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// GetCandidate looks up the candidate contact record by licence number.
func (c *Client) GetCandidate(ctx context.Context, licenceNumber string) (crm.CRMCandidateResponse, error) {
	var response crm.CRMCandidateResponse
	err := c.doJSON(ctx, http.MethodGet, "/candidates/"+url.PathEscape(licenceNumber), nil, &response)
	return response, err
}

// GetBookingDetails fetches the nested booking-details graph for a reference.
func (c *Client) GetBookingDetails(ctx context.Context, bookingReference string) (crm.CRMBookingDetails, error) {
	var response crm.CRMBookingDetails
	err := c.doJSON(ctx, http.MethodGet, "/booking-details/"+url.PathEscape(bookingReference), nil, &response)
	return response, err
}

// CreateBooking writes the parent booking record.
func (c *Client) CreateBooking(ctx context.Context, payload crm.CRMBooking) (crm.CRMBookingResponse, error) {
	var response crm.CRMBookingResponse
	err := c.doJSON(ctx, http.MethodPost, "/bookings", payload, &response)
	return response, err
}

// CreateBookingProduct writes the child booking product and returns its id.
func (c *Client) CreateBookingProduct(ctx context.Context, payload crm.CRMBookingProduct) (string, error) {
	var response struct {
		BookingProductID string `json:"ftts_bookingproductid"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/booking-products", payload, &response); err != nil {
		return "", err
	}
	return response.BookingProductID, nil
}

// UpdateBookingStatuses applies one status pair to a batch of bookings.
func (c *Client) UpdateBookingStatuses(ctx context.Context, bookingIDs []string, status crm.CRMBookingStatus, nsaStatus crm.CRMNsaStatus) error {
	payload := struct {
		BookingIDs []string             `json:"bookingIds"`
		Status     crm.CRMBookingStatus `json:"ftts_bookingstatus"`
		NsaStatus  crm.CRMNsaStatus     `json:"ftts_nonstandardaccommodation"`
	}{
		BookingIDs: bookingIDs,
		Status:     status,
		NsaStatus:  nsaStatus,
	}
	return c.doJSON(ctx, http.MethodPost, "/bookings/status-batch", payload, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, response any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode crm request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build crm request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "crm request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sentinel.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return sentinel.ErrConflict
	case resp.StatusCode >= 400:
		c.logger.ErrorContext(ctx, "crm request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return dErrors.Newf(dErrors.CodeInternal, "crm returned status %d for %s %s", resp.StatusCode, method, path)
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "decode crm response")
	}
	return nil
}
