package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AaronStockburger/job-worker/internal/application/dto"
	"github.com/AaronStockburger/job-worker/internal/application/usecase"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
)

// taskTypeOnDemand is the task type recorded for analyses requested over gRPC.
const taskTypeOnDemand = "grpc"

// Compile-time assertion that RiskAnalysisHandler implements RiskAnalysisServiceServer.
var _ RiskAnalysisServiceServer = (*RiskAnalysisHandler)(nil)

// RiskAnalysisHandler implements the gRPC RiskAnalysisServiceServer interface.
type RiskAnalysisHandler struct {
	UnimplementedRiskAnalysisServiceServer
	analyze *usecase.AnalyzeSegmentRisk
	logger  *slog.Logger
}

// NewRiskAnalysisHandler creates a new gRPC handler.
func NewRiskAnalysisHandler(analyze *usecase.AnalyzeSegmentRisk, logger *slog.Logger) *RiskAnalysisHandler {
	return &RiskAnalysisHandler{
		analyze: analyze,
		logger:  logger,
	}
}

// Proto-aligned request/response message types.

// AnalyzeSegmentsRequest represents the proto AnalyzeSegmentsRequest message. Variables
// use the same names as job variables.
type AnalyzeSegmentsRequest struct {
	Variables map[string]any `json:"variables"`
	RequestID string         `json:"request_id"`
}

// AnalyzeSegmentsResponse represents the proto AnalyzeSegmentsResponse message.
type AnalyzeSegmentsResponse struct {
	Output    *dto.AnalysisOutput `json:"output"`
	RequestID string              `json:"request_id"`
}

// AnalyzeSegments scores the segments of one request.
func (h *RiskAnalysisHandler) AnalyzeSegments(ctx context.Context, req *AnalyzeSegmentsRequest) (*AnalyzeSegmentsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	job, err := model.NewRiskAnalysisJob(requestID, taskTypeOnDemand)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	out, err := h.analyze.Execute(ctx, job, req.Variables)
	if err != nil {
		h.logger.Warn("on-demand risk analysis failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return nil, toStatus(err)
	}

	return &AnalyzeSegmentsResponse{
		Output:    &out,
		RequestID: requestID,
	}, nil
}

// toStatus maps analysis errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrProfileUnavailable):
		return status.Error(codes.Unavailable, "risk analysis service unavailable")
	case errors.Is(err, model.ErrInvalidProfile):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
