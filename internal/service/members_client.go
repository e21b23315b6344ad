package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coach-tree-portal/internal/config"
	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/logger"
	"coach-tree-portal/internal/models"
)

const defaultMembersTimeout = 15 * time.Second

// MembersClient talks to the external members REST API. Every call is a single round trip.
type MembersClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMembersClient creates a new members API client
func NewMembersClient(cfg *config.Config) (*MembersClient, error) {
	base := strings.TrimSpace(cfg.MembersAPIBaseURL)
	if base == "" {
		return nil, apperrors.ErrMembersAPIBaseURLMissing
	}

	// Normalize base URL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid members api base URL '%s': %w", base, err)
	}

	timeout := time.Duration(cfg.MembersAPITimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultMembersTimeout
	}

	return &MembersClient{
		baseURL:    baseURL.String(),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the normalized base URL the client talks to
func (c *MembersClient) BaseURL() string {
	return c.baseURL
}

// FetchAll returns every member ordered by id
func (c *MembersClient) FetchAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := c.do(ctx, http.MethodGet, c.membersURL(), nil, &members); err != nil {
		return nil, err
	}
	return models.SortByID(members), nil
}

// CreateOne creates a member. The response body, if any, is ignored.
func (c *MembersClient) CreateOne(ctx context.Context, payload models.CreateMemberRequest) error {
	return c.do(ctx, http.MethodPost, c.membersURL(), payload, nil)
}

// DeleteOne deletes the member with the given id
func (c *MembersClient) DeleteOne(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.memberURL(id), nil, nil)
}

// UpdateOne applies a partial update to the member with the given id
func (c *MembersClient) UpdateOne(ctx context.Context, id int, payload models.UpdateMemberRequest) error {
	return c.do(ctx, http.MethodPatch, c.memberURL(id), payload, nil)
}

func (c *MembersClient) membersURL() string {
	return c.baseURL + "/members"
}

func (c *MembersClient) memberURL(id int) string {
	return c.baseURL + "/members/" + strconv.Itoa(id)
}

// do performs one JSON request and decodes the response into out when out is non-nil.
func (c *MembersClient) do(ctx context.Context, method, fullURL string, body, out interface{}) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"method": method,
		"url":    fullURL,
	})
	log.Debug("Invoking members API")

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode members request body: %w", err)
		}
		reqBody = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Members API request failed")
		return &apperrors.NetworkError{Op: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	log = log.WithFields(map[string]interface{}{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Warn("Members API returned non-2xx status")
		return &apperrors.HTTPStatusError{
			Op:         method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode members response: %w", err)
		}
	}

	log.Info("Members API request completed")
	return nil
}
