package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified name of the show search service.
const ServiceName = "showsearch.v1.ShowSearchService"

// Full method names, as seen by interceptors and clients.
const (
	SearchShowsFullMethod = "/" + ServiceName + "/SearchShows"
	GetEpisodesFullMethod = "/" + ServiceName + "/GetEpisodes"
)

// ShowSearchServer is the server API for the show search service. Requests
// and responses use the well-known protobuf types so the service needs no
// generated code: shows and episodes travel as structs inside a ListValue.
type ShowSearchServer interface {
	SearchShows(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetEpisodes(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
}

// ShowSearchServiceDesc describes the service for grpc.Server.RegisterService.
var ShowSearchServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShowSearchServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchShows", Handler: searchShowsHandler},
		{MethodName: "GetEpisodes", Handler: getEpisodesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "showsearch/v1/showsearch.proto",
}

// RegisterShowSearchServer registers srv on s
func RegisterShowSearchServer(s grpc.ServiceRegistrar, srv ShowSearchServer) {
	s.RegisterService(&ShowSearchServiceDesc, srv)
}

func searchShowsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowSearchServer).SearchShows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchShowsFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowSearchServer).SearchShows(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getEpisodesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowSearchServer).GetEpisodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetEpisodesFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowSearchServer).GetEpisodes(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}
