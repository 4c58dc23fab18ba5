package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Endpoint   string // e.g. https://<resource>.cognitiveservices.azure.com
	APIKey     string // if empty, falls back to env AZURE_DOCINTEL_KEY
	ModelID    string // default "prebuilt-read"
	APIVersion string // default "2024-11-30"

	PollInterval time.Duration // default 2s
	PollTimeout  time.Duration // default 2m
	HTTPTimeout  time.Duration // per-request, default 30s
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AZURE_DOCINTEL_KEY")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = os.Getenv("AZURE_DOCINTEL_ENDPOINT")
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "prebuilt-read"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-11-30"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 2 * time.Minute
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		log:        logger,
	}
}

// Analyze submits the document bytes, polls the returned operation until it
// settles, and maps the layout into strategy inputs. contentType must match
// the payload (image/jpeg, image/png, application/pdf, ...).
func (c *Client) Analyze(ctx context.Context, doc []byte, contentType string) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("docintel.analyze.start",
		"req_id", rid,
		"model", c.cfg.ModelID,
		"content_type", contentType,
		"bytes", len(doc),
	)

	opURL, err := c.submit(ctx, doc, contentType)
	if err != nil {
		c.log.Error("docintel.analyze.submit_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	op, raw, err := c.poll(ctx, opURL)
	if err != nil {
		c.log.Error("docintel.analyze.poll_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}
	if op.AnalyzeResult == nil {
		return Result{}, fmt.Errorf("docintel: succeeded without analyzeResult")
	}

	res := mapResult(op.AnalyzeResult)
	res.Raw = raw

	c.log.Info("docintel.analyze.ok",
		"req_id", rid,
		"pages", res.Pages,
		"lines", len(res.Lines),
		"tokens", len(res.Tokens),
		"confidence", res.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// AnalyzeFile reads path and infers the content type from its extension.
func (c *Client) AnalyzeFile(ctx context.Context, path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("docintel: read %s: %w", path, err)
	}
	return c.Analyze(ctx, b, contentTypeForPath(path))
}

func (c *Client) submit(ctx context.Context, doc []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.ModelID, c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(doc))
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("docintel http error: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		return "", fmt.Errorf("docintel submit status %d: %s", resp.StatusCode, string(body))
	}
	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("docintel: no Operation-Location header")
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, opURL string) (*analyzeOperation, []byte, error) {
	deadline := time.Now().Add(c.cfg.PollTimeout)
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		op, raw, err := c.getOperation(ctx, opURL)
		if err != nil {
			return nil, nil, err
		}
		switch op.Status {
		case "succeeded":
			return op, raw, nil
		case "failed":
			return nil, nil, fmt.Errorf("docintel analyze failed: %s", op.Error.String())
		}
		if time.Now().After(deadline) {
			return nil, nil, fmt.Errorf("docintel analyze timed out after %s (status %q)", c.cfg.PollTimeout, op.Status)
		}
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) getOperation(ctx context.Context, opURL string) (*analyzeOperation, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("docintel http error: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		return nil, nil, fmt.Errorf("docintel poll status %d: %s", resp.StatusCode, string(body))
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	var op analyzeOperation
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, nil, fmt.Errorf("docintel: decode operation: %w", err)
	}
	return &op, raw, nil
}

func (c *Client) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.log.Warn("docintel response body close error", "error", err)
	}
}

func contentTypeForPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".heic"):
		return "image/heic"
	default:
		return "image/jpeg"
	}
}
