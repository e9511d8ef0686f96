// Package api is the HTTP client for the reservation backend REST API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tilavaraus/tilavaraus-web/internal/platform/timeouts"
	apperrors "github.com/tilavaraus/tilavaraus-web/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "github.com/tilavaraus/tilavaraus-web/internal/services/web/api"
	maxResponseSize = 4 << 20

	keyBackendUnavailable        = "errors.backendUnavailable"
	keyApplicationPeriodNotFound = "errors.applicationPeriodNotFound"
	keyInvalidParameterKind      = "errors.invalidParameterKind"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the absolute backend root, e.g. https://host/api.
	BaseURL string
	// Timeout bounds each call. Zero uses timeouts.APIRequest.
	Timeout time.Duration
	// HTTPClient overrides the transport client.
	HTTPClient *http.Client
}

// Client fetches application periods and reference parameters. It never
// retries; each call is bounded by the configured timeout and the caller's
// context.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	httpClient *http.Client
	tracer     trace.Tracer
}

// New validates cfg and returns a client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q must use http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api base url %q must include a host", raw)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    base,
		timeout:    timeout,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// GetApplicationPeriod fetches one application period by id.
func (c *Client) GetApplicationPeriod(ctx context.Context, id int) (ApplicationPeriod, error) {
	var period ApplicationPeriod
	path := "/v1/application_period/" + strconv.Itoa(id) + "/"
	if err := c.get(ctx, "GetApplicationPeriod", path, keyApplicationPeriodNotFound, &period); err != nil {
		return ApplicationPeriod{}, fmt.Errorf("fetch application period %d: %w", id, err)
	}
	return period, nil
}

// GetApplicationPeriods fetches every application period.
func (c *Client) GetApplicationPeriods(ctx context.Context) ([]ApplicationPeriod, error) {
	var periods []ApplicationPeriod
	if err := c.get(ctx, "GetApplicationPeriods", "/v1/application_period/", keyBackendUnavailable, &periods); err != nil {
		return nil, fmt.Errorf("fetch application periods: %w", err)
	}
	return periods, nil
}

// GetParameters fetches the reference parameters of kind. Unknown kinds
// are rejected without contacting the backend.
func (c *Client) GetParameters(ctx context.Context, kind ParameterKind) ([]Parameter, error) {
	if !kind.Valid() {
		return nil, apperrors.EK(apperrors.KindInvalidInput, keyInvalidParameterKind, fmt.Sprintf("unknown parameter kind %q", kind))
	}
	var params []Parameter
	path := "/v1/parameters/" + string(kind) + "/"
	if err := c.get(ctx, "GetParameters", path, keyBackendUnavailable, &params); err != nil {
		return nil, fmt.Errorf("fetch %s parameters: %w", kind, err)
	}
	return params, nil
}

func (c *Client) get(ctx context.Context, operation string, path string, notFoundKey string, target any) (err error) {
	if c == nil {
		return apperrors.EK(apperrors.KindUnavailable, keyBackendUnavailable, "api client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL.JoinPath(path)
	// Backend routes end with a slash.
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/"

	ctx, span := c.tracer.Start(ctx, "api."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", endpoint.String()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnknown, keyBackendUnavailable, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, keyBackendUnavailable, "request backend", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return apperrors.EK(apperrors.KindNotFound, notFoundKey, "backend resource not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return apperrors.EK(apperrors.KindUnavailable, keyBackendUnavailable, fmt.Sprintf("backend status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(target); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, keyBackendUnavailable, "decode backend response", err)
	}
	return nil
}
