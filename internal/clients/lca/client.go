package lca

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
	"github.com/ecoswitch/ecoswitch-backend/internal/utils"
)

// ErrProcessNotFound means the backend knows the method but not the
// requested process code.
var ErrProcessNotFound = errors.New("lca: process not found")

// BackendError wraps transport-level or server-side failures so callers
// can tell "backend unavailable" apart from unexpected errors.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("lca backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Client computes the environmental impact of a reference process for a
// given functional unit, in kg CO2-eq under GWP 100a.
type Client interface {
	Impact(ctx context.Context, processCode string, functionalUnit float64) (float64, error)
	Method() string
}

type httpClient struct {
	baseURL string
	method  string
	hc      *http.Client
	log     *logger.Logger
}

// NewClient builds the HTTP client for the external LCA engine from
// LCA_BACKEND_URL. The timeout bounds the only I/O step of the scoring
// pipeline.
func NewClient(log *logger.Logger) (Client, error) {
	baseURL := strings.TrimSpace(utils.GetEnv("LCA_BACKEND_URL", "", log))
	if baseURL == "" {
		return nil, fmt.Errorf("missing LCA_BACKEND_URL")
	}
	timeoutSeconds := utils.GetEnvAsInt("LCA_TIMEOUT_SECONDS", 10, log)

	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		method:  types.LCAMethodGWP100a,
		hc:      &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		log:     log.With("client", "LCAClient"),
	}, nil
}

func (c *httpClient) Method() string { return c.method }

func (c *httpClient) Impact(ctx context.Context, processCode string, functionalUnit float64) (float64, error) {
	q := url.Values{}
	q.Set("process", processCode)
	q.Set("method", c.method)
	q.Set("functional_unit", strconv.FormatFloat(functionalUnit, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/impact?"+q.Encode(), nil)
	if err != nil {
		return 0, &BackendError{Op: "request", Err: err}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, &BackendError{Op: "call", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, ErrProcessNotFound
	case resp.StatusCode != http.StatusOK:
		return 0, &BackendError{Op: "call", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var body struct {
		Impact float64 `json:"impact"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, &BackendError{Op: "decode", Err: err}
	}
	return body.Impact, nil
}
