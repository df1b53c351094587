// Package ingest provides the HTTP client for the remote ingestion endpoint
// that receives quiz records during bulk transfer. Delivery is copy, not
// move: nothing here ever touches the local collection.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/matchday/quizgen/internal/config"
	"github.com/matchday/quizgen/internal/domain"
)

// ErrDeliveryFailed is returned when a record could not be delivered,
// whether the endpoint was unreachable, timed out, or rejected the record.
var ErrDeliveryFailed = errors.New("failed to deliver quiz record")

// Client posts quiz records to the configured ingestion endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client for the endpoint in cfg. The configured timeout is
// applied per request, so one stuck delivery cannot stall a whole transfer.
func New(cfg config.UploadConfig, logger *slog.Logger) *Client {
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// Upload delivers a single quiz record. A timeout, connection failure or
// non-2xx status is reported as ErrDeliveryFailed with the cause attached.
func (c *Client) Upload(ctx context.Context, record *domain.QuizRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer func() {
		// Drain so the connection can be reused for the next record.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: endpoint returned %s", ErrDeliveryFailed, resp.Status)
	}

	c.logger.DebugContext(ctx, "quiz record delivered",
		"quiz_id", record.ID,
		"status", resp.StatusCode)
	return nil
}
