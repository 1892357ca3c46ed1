package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nutriplan/internal/models"
	"nutriplan/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	recommendationPath = "/predict/recommendation"
	defaultTimeout     = 30 * time.Second
	maxErrorBodyBytes  = 4 << 10
)

// Options configures a prediction Client. BaseURL is the service root;
// Timeout bounds the single upstream attempt.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the external diet recommendation service. One HTTP POST
// per request, no silent retries; retry policy belongs to callers.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a prediction client from explicit options. There are
// no ambient environment fallbacks here; configuration is resolved by the
// caller.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:  recommendationURL(opts.BaseURL),
		http: &http.Client{Timeout: timeout},
	}
}

// recommendationURL joins the base URL with the fixed endpoint path,
// tolerating a base that already includes it.
func recommendationURL(base string) string {
	if strings.HasSuffix(base, recommendationPath) {
		return base
	}
	return strings.TrimRight(base, "/") + recommendationPath
}

// Recommend posts the built payload and returns the upstream response
// body verbatim. Failures translate to an UpstreamError carrying the
// remote error body when one was returned.
func (c *Client) Recommend(ctx context.Context, req *Request) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		observability.PredictionRequestsTotal.WithLabelValues("build_error").Inc()
		return nil, models.NewInternalError(err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		observability.PredictionRequestsTotal.WithLabelValues("build_error").Inc()
		return nil, models.NewInternalError(err)
	}

	ctx, span := observability.StartClientSpan(ctx, "prediction.recommend",
		attribute.String("http.url", c.url),
		attribute.String("peer.service", "prediction-service"),
	)
	defer span.End()

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		observability.ObservePrediction("build_error", start)
		return nil, models.NewInternalError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		outcome := "upstream_error"
		message := "Prediction service unreachable"
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			outcome = "timeout"
			message = "Prediction service timed out"
		}
		observability.ObservePrediction(outcome, start)
		upstreamErr := models.NewUpstreamError(message, err)
		observability.RecordSpanError(span, upstreamErr)
		return nil, upstreamErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		message := strings.TrimSpace(string(remote))
		if message == "" {
			message = fmt.Sprintf("prediction service returned status %d", resp.StatusCode)
		}
		observability.ObservePrediction("upstream_error", start)
		upstreamErr := models.NewUpstreamError(message, fmt.Errorf("upstream status %d", resp.StatusCode))
		observability.RecordSpanError(span, upstreamErr)
		return nil, upstreamErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.ObservePrediction("upstream_error", start)
		upstreamErr := models.NewUpstreamError("failed reading prediction response", err)
		observability.RecordSpanError(span, upstreamErr)
		return nil, upstreamErr
	}

	observability.ObservePrediction("success", start)
	return json.RawMessage(raw), nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
