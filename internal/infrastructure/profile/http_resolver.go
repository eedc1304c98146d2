package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// Compile-time interface check.
var _ port.ProfileResolver = (*HTTPResolver)(nil)

// maxProfileBody bounds the size of a profile response.
const maxProfileBody = 1 << 20

// HTTPResolver implements port.ProfileResolver against the profile service
// (GET {baseURL}/analysisProfiles/{mode}).
type HTTPResolver struct {
	client  *http.Client
	tracer  trace.Tracer
	baseURL string
}

// NewHTTPResolver creates a resolver whose every request is bounded by timeout.
func NewHTTPResolver(baseURL string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("github.com/AaronStockburger/job-worker/internal/infrastructure/profile"),
	}
}

// Resolve fetches the profile of mode. Transport errors, timeouts, non-2xx responses
// and undecodable bodies are all reported as ErrProfileUnavailable; no retry is made.
func (r *HTTPResolver) Resolve(ctx context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error) {
	ctx, span := r.tracer.Start(ctx, "profile.Resolve",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("analysis.mode", mode.String())),
	)
	defer span.End()

	profile, err := r.fetch(ctx, mode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return profile, nil
}

func (r *HTTPResolver) fetch(ctx context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error) {
	endpoint := r.baseURL + "/analysisProfiles/" + url.PathEscape(mode.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", model.ErrProfileUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", model.ErrProfileUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBody))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", model.ErrProfileUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: status %d", model.ErrProfileUnavailable, endpoint, resp.StatusCode)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding profile: %v", model.ErrProfileUnavailable, err)
	}

	return doc.ToModel()
}
