package grpc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
)

// errorDomain is the ErrorInfo domain attached to failed calls.
const errorDomain = "showsearch"

// ErrorInfo reasons.
const (
	ReasonNotFound         = "NOT_FOUND"
	ReasonRemoteCallFailed = "REMOTE_CALL_FAILED"
)

// server implements the ShowSearchServer interface
type server struct {
	client client.Client
	logger zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(c client.Client) ShowSearchServer {
	return &server{
		client: c,
		logger: config.GetLogger(),
	}
}

// SearchShows implements ShowSearchServer.SearchShows
func (s *server) SearchShows(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	term := req.GetValue()
	s.logger.Debug().Str("term", term).Msg("SearchShows called")

	shows, err := s.client.SearchShows(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search shows")
		return nil, toStatusError(err, "failed to search shows")
	}

	s.logger.Debug().Str("term", term).Int("count", len(shows)).Msg("SearchShows completed")
	return convertShowsToProto(shows), nil
}

// GetEpisodes implements ShowSearchServer.GetEpisodes
func (s *server) GetEpisodes(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	showID := int(req.GetValue())
	s.logger.Debug().Int("show_id", showID).Msg("GetEpisodes called")

	episodes, err := s.client.GetEpisodes(ctx, showID)
	if err != nil {
		s.logger.Error().Err(err).Int("show_id", showID).Msg("Failed to get episodes")
		return nil, toStatusError(err, "failed to get episodes")
	}

	s.logger.Debug().Int("show_id", showID).Int("count", len(episodes)).Msg("GetEpisodes completed")
	return convertEpisodesToProto(episodes), nil
}

// toStatusError maps a client error to a gRPC status. Remote call failures
// carry an ErrorInfo detail with the URL and upstream status code.
func toStatusError(err error, msg string) error {
	message := fmt.Sprintf("%s: %v", msg, err)

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, message)
	}

	var remote *apperrors.ErrRemoteCall
	if !errors.As(err, &remote) {
		return status.Error(codes.Internal, message)
	}

	code, reason := codes.Unavailable, ReasonRemoteCallFailed
	if apperrors.IsNotFound(err) {
		code, reason = codes.NotFound, ReasonNotFound
	}

	st := status.New(code, message)
	metadata := map[string]string{"url": remote.URL}
	if remote.StatusCode != 0 {
		metadata["status_code"] = strconv.Itoa(remote.StatusCode)
	}
	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
