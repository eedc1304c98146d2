package grpc

// proto.go defines the gRPC server interface of gridrisk/v1/risk_analysis.proto.
// Messages are plain structs carried by the JSON codec registered in json_codec.go; clients
// call with grpc.CallContentSubtype(JSONCodecName).

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RiskAnalysisServiceServer is the server API for RiskAnalysisService.
type RiskAnalysisServiceServer interface {
	AnalyzeSegments(context.Context, *AnalyzeSegmentsRequest) (*AnalyzeSegmentsResponse, error)
	mustEmbedUnimplementedRiskAnalysisServiceServer()
}

// UnimplementedRiskAnalysisServiceServer provides forward-compatible default implementations.
type UnimplementedRiskAnalysisServiceServer struct{}

func (UnimplementedRiskAnalysisServiceServer) AnalyzeSegments(context.Context, *AnalyzeSegmentsRequest) (*AnalyzeSegmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeSegments not implemented")
}
func (UnimplementedRiskAnalysisServiceServer) mustEmbedUnimplementedRiskAnalysisServiceServer() {}

// RegisterRiskAnalysisServiceServer registers the RiskAnalysisServiceServer with the gRPC server.
func RegisterRiskAnalysisServiceServer(s grpclib.ServiceRegistrar, srv RiskAnalysisServiceServer) {
	s.RegisterService(&_RiskAnalysisService_serviceDesc, srv)
}

// AnalyzeSegmentsFullMethod is the full method name of AnalyzeSegments.
const AnalyzeSegmentsFullMethod = "/gridrisk.v1.RiskAnalysisService/AnalyzeSegments"

var _RiskAnalysisService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "gridrisk.v1.RiskAnalysisService",
	HandlerType: (*RiskAnalysisServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AnalyzeSegments", Handler: _RiskAnalysisService_AnalyzeSegments_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "gridrisk/v1/risk_analysis.proto",
}

func _RiskAnalysisService_AnalyzeSegments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AnalyzeSegmentsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskAnalysisServiceServer).AnalyzeSegments(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalyzeSegmentsFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskAnalysisServiceServer).AnalyzeSegments(ctx, req.(*AnalyzeSegmentsRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// RiskAnalysisServiceClient is the client API for RiskAnalysisService.
type RiskAnalysisServiceClient interface {
	AnalyzeSegments(ctx context.Context, in *AnalyzeSegmentsRequest, opts ...grpclib.CallOption) (*AnalyzeSegmentsResponse, error)
}

type riskAnalysisServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewRiskAnalysisServiceClient creates a client that always uses the JSON codec.
func NewRiskAnalysisServiceClient(cc grpclib.ClientConnInterface) RiskAnalysisServiceClient {
	return &riskAnalysisServiceClient{cc: cc}
}

func (c *riskAnalysisServiceClient) AnalyzeSegments(ctx context.Context, in *AnalyzeSegmentsRequest, opts ...grpclib.CallOption) (*AnalyzeSegmentsResponse, error) {
	out := new(AnalyzeSegmentsResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(JSONCodecName)}, opts...)
	if err := c.cc.Invoke(ctx, AnalyzeSegmentsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
