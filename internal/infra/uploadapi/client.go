package uploadapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"brrow-engine/internal/infra"
	"brrow-engine/internal/pkg/authctx"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/usecase"

	"github.com/cenkalti/backoff/v4"
)

const maxErrorBody = 64 << 10

// Client uploads images to the backend's upload endpoint as base64 JSON,
// retrying transient failures.
type Client struct {
	http   *http.Client
	url    string
	cfg    config.UploadConfig
	logger *slog.Logger
}

func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: cfg.Upload.Timeout},
		url:    strings.TrimRight(cfg.Backend.BaseURL, "/") + cfg.Upload.Endpoint,
		cfg:    cfg.Upload,
		logger: logger,
	}
}

type uploadRequest struct {
	Image            string `json:"image"`
	Type             string `json:"type"`
	EntityType       string `json:"entity_type"`
	MediaType        string `json:"media_type"`
	PreserveMetadata bool   `json:"preserve_metadata"`
	FileName         string `json:"file_name,omitempty"`
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	} `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Upload sends one asset. progress receives the fraction of the request body
// written so far and never goes backwards across retries.
func (c *Client) Upload(ctx context.Context, req usecase.UploadRequest, progress func(float64)) (*usecase.UploadResult, error) {
	if len(req.Data) == 0 {
		return nil, infra.ResponseErr(c.logger, infra.KindRejected, http.StatusBadRequest, "image is empty")
	}
	if c.cfg.MaxAssetBytes > 0 && int64(len(req.Data)) > c.cfg.MaxAssetBytes {
		return nil, infra.ResponseErr(c.logger, infra.KindRejected, http.StatusRequestEntityTooLarge, "image exceeds the upload size limit")
	}

	payload, err := json.Marshal(uploadRequest{
		Image:            base64.StdEncoding.EncodeToString(req.Data),
		Type:             c.cfg.EntityType,
		EntityType:       c.cfg.EntityType,
		MediaType:        "image",
		PreserveMetadata: c.cfg.PreserveMetadata,
		FileName:         req.Name,
	})
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "failed to encode upload", err)
	}

	mark := &highWaterMark{report: progress}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.cfg.RetryBaseDelay
	policy.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(policy, c.cfg.MaxRetries), ctx)

	attempt := 0
	result, err := backoff.RetryWithData(func() (*usecase.UploadResult, error) {
		attempt++
		res, err := c.send(ctx, payload, mark)
		if err != nil && attempt > 1 {
			c.logger.Debug("Upload attempt failed", slog.String("asset", req.AssetID), slog.Int("attempt", attempt))
		}
		return res, err
	}, b)
	if err != nil {
		var ie infra.Error
		if !errors.As(err, &ie) {
			// the backoff gave up on a context error between attempts
			if errors.Is(err, context.Canceled) {
				return nil, infra.WrapErr(c.logger, infra.KindCanceled, "upload cancelled", err)
			}
			return nil, infra.WrapErr(c.logger, infra.KindTransport, "upload failed", err)
		}
		return nil, err
	}
	return result, nil
}

// send performs one attempt. Errors that must not be retried come back
// wrapped in backoff.Permanent.
func (c *Client) send(ctx context.Context, payload []byte, mark *highWaterMark) (*usecase.UploadResult, error) {
	body := &countingReader{r: bytes.NewReader(payload), total: len(payload), mark: mark}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, backoff.Permanent(infra.WrapErr(c.logger, infra.KindTransport, "failed to build upload request", err))
	}
	httpReq.ContentLength = int64(len(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token := authctx.Token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(infra.WrapErr(c.logger, infra.KindCanceled, "upload cancelled", err))
		}
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "upload request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "failed to read upload response", err)
	}
	var out uploadResponse
	decodeErr := json.Unmarshal(raw, &out)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, infra.ResponseErr(c.logger, infra.KindTransport, resp.StatusCode, out.message())
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, backoff.Permanent(infra.ResponseErr(c.logger, infra.KindRejected, resp.StatusCode, out.message()))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, backoff.Permanent(infra.ResponseErr(c.logger, infra.KindRejected, resp.StatusCode, out.message()))
	}

	if decodeErr != nil {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "failed to decode upload response", decodeErr)
	}
	if !out.Success || out.Data == nil || out.Data.URL == "" {
		return nil, infra.WrapErr(c.logger, infra.KindMalformedResponse, "upload response has no url", nil)
	}
	return &usecase.UploadResult{URL: out.Data.URL, PublicID: out.Data.PublicID}, nil
}

func (r uploadResponse) message() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

type highWaterMark struct {
	mu     sync.Mutex
	max    float64
	report func(float64)
}

func (m *highWaterMark) observe(p float64) {
	if m.report == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p <= m.max {
		return
	}
	m.max = p
	m.report(p)
}

type countingReader struct {
	r     io.Reader
	read  int
	total int
	mark  *highWaterMark
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 && c.total > 0 {
		c.read += n
		c.mark.observe(float64(c.read) / float64(c.total))
	}
	return n, err
}
