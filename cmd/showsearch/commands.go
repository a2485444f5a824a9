package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	grpcserver "github.com/Belphemur/ShowSearch/internal/grpc"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/render"
	"github.com/Belphemur/ShowSearch/internal/reporting"
	"github.com/Belphemur/ShowSearch/internal/services"
)

// browseOptions are the settings shared by the search and episodes commands
type browseOptions struct {
	cfg    *config.Config
	remote string // gRPC address of a running "serve"; empty queries the directory directly
}

// newRootCmd builds the command tree. Flags override a copy of cfg so the
// loaded configuration stays untouched.
func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := *cfg
	browse := &browseOptions{cfg: &opts}

	root := &cobra.Command{
		Use:           "showsearch",
		Short:         "Search TV shows and list their episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.APIBaseURL, "base-url", opts.APIBaseURL, "TV directory API base URL")
	root.PersistentFlags().StringVar(&opts.Render.Format, "format", opts.Render.Format, "output format: text or html")
	root.PersistentFlags().StringVar(&browse.remote, "remote", "", "query a showsearch gRPC server at host:port instead of the directory")

	root.AddCommand(newSearchCmd(browse), newEpisodesCmd(browse), newServeCmd(&opts))
	return root
}

func newSearchCmd(opts *browseOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search shows by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var term string
			if len(args) == 1 {
				term = args[0]
			}
			return runBrowser(cmd, opts, func(ctx context.Context, b services.ShowBrowser) error {
				_, err := b.HandleSearch(ctx, term)
				return err
			})
		},
	}
}

func newEpisodesCmd(opts *browseOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "List the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid show id %q: %w", args[0], err)
			}
			return runBrowser(cmd, opts, func(ctx context.Context, b services.ShowBrowser) error {
				_, err := b.HandleEpisodes(ctx, showID)
				return err
			})
		},
	}
}

// runBrowser wires a client and the configured renderer into a ShowBrowser
// writing to the command output, and reports failures.
func runBrowser(cmd *cobra.Command, opts *browseOptions, run func(context.Context, services.ShowBrowser) error) error {
	renderer, err := render.New(opts.cfg.Render.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	directory, err := newDirectoryClient(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := directory.Close(); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Msg("Failed to close client")
		}
	}()

	if err := run(cmd.Context(), services.NewShowBrowser(directory, renderer)); err != nil {
		reporting.Capture(err, map[string]string{"command": cmd.Name()})
		return err
	}
	return nil
}

// newDirectoryClient talks to the remote server when one is set, otherwise to the directory
func newDirectoryClient(opts *browseOptions) (client.Client, error) {
	if opts.remote == "" {
		return client.NewClient(opts.cfg), nil
	}
	return grpcserver.NewRemoteClient(opts.remote)
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the show search gRPC API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Server.Address, "address", cfg.Server.Address, "gRPC listen address")
	cmd.Flags().IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "gRPC listen port")
	return cmd
}

// serve runs the gRPC server, and the metrics server when enabled, until ctx is done.
func serve(ctx context.Context, cfg *config.Config) error {
	logger := config.GetLogger()
	logger.Info().
		Str("api_base_url", cfg.BaseURL()).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("cache_provider", cfg.Cache.Provider).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	directory := client.NewClient(cfg)
	defer func() {
		if err := directory.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close client")
		}
	}()

	grpcServer := grpcserver.NewGRPCServer(directory)

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	address := net.JoinHostPort(cfg.Server.Address, strconv.Itoa(cfg.Server.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create listener on %s: %w", address, err)
	}

	logger.Info().Str("address", address).Msg("Starting gRPC server")

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received shutdown signal")
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	logger.Info().Msg("Server stopped gracefully")
	return nil
}
