package jsr

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Cyclone1070/toolbelt/internal/config"
	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchTool queries the JSR package index.
type SearchTool struct {
	client       httpDoer
	config       *config.Config
	logger       *zap.Logger
	newVisitorID func() string
}

// NewSearchTool creates a new SearchTool. A nil logger disables logging.
func NewSearchTool(client httpDoer, cfg *config.Config, logger *zap.Logger) *SearchTool {
	if client == nil {
		panic("client is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchTool{
		client:       client,
		config:       cfg,
		logger:       logger,
		newVisitorID: visitorID,
	}
}

// NewHTTPClient returns a client whose timeout comes from the registry config.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.Registry.TimeoutSeconds) * time.Second}
}

func (t *SearchTool) Name() string { return "search_jsr" }

func (t *SearchTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Search JSR",
		Description: "Searches the JSR (jsr.io) registry for packages, modules, and documentation using the Orama search API.",
		Parameters:  searchSchema,
	}
}

func (t *SearchTool) Input() any { return &SearchRequest{} }

func (t *SearchTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*SearchRequest)
	if !ok {
		return "", errors.New("search_jsr: unexpected input type")
	}
	return t.Run(ctx, req)
}

// Run sends one search request and returns the index's answer as indented JSON.
func (t *SearchTool) Run(ctx context.Context, req *SearchRequest) (string, error) {
	q, err := json.Marshal(query{Term: req.Term, Limit: req.Limit, Mode: req.Mode, Boost: defaultBoost})
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("q", string(q))
	form.Set("version", t.config.Registry.Version)
	form.Set("id", t.config.Registry.IndexID)
	form.Set("visitorId", t.newVisitorID())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.Registry.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &RegistryUnavailableError{Cause: err}
	}
	httpReq.Header.Set("Accept", "*/*")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	httpReq.Header.Set("Cache-Control", "no-cache")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Pragma", "no-cache")

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		t.logger.Warn("registry request failed", zap.String("term", req.Term), zap.Error(err))
		return "", &RegistryUnavailableError{Cause: err}
	}
	defer resp.Body.Close()

	t.logger.Debug("registry responded",
		zap.String("term", req.Term),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &RegistryUnavailableError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RegistryUnavailableError{Cause: err}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(body), "", "  "); err != nil {
		return "", &DecodeError{Cause: err}
	}
	return out.String(), nil
}

// visitorID returns 24 hex characters taken from a random UUID.
func visitorID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:12])
}
