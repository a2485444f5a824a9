package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// remoteClient implements client.Client by calling a show search service
type remoteClient struct {
	conn *grpc.ClientConn
}

// NewRemoteClient connects to the show search service at target. Without
// options the connection is plaintext. The result can stand in for a direct
// directory client anywhere a client.Client is accepted.
func NewRemoteClient(target string, opts ...grpc.DialOption) (client.Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %s: %w", target, err)
	}
	return &remoteClient{conn: conn}, nil
}

// SearchShows implements client.Client
func (c *remoteClient) SearchShows(ctx context.Context, term string) ([]models.ShowSummary, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, SearchShowsFullMethod, wrapperspb.String(term), out); err != nil {
		return nil, fmt.Errorf("failed to search shows for %q: %w", term, err)
	}
	return convertShowsFromProto(out)
}

// GetEpisodes implements client.Client
func (c *remoteClient) GetEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, GetEpisodesFullMethod, wrapperspb.Int64(int64(showID)), out); err != nil {
		return nil, fmt.Errorf("failed to get episodes for show %d: %w", showID, err)
	}
	return convertEpisodesFromProto(out)
}

// Close implements client.Client
func (c *remoteClient) Close() error {
	return c.conn.Close()
}
