package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	grpcserver "github.com/Belphemur/ShowSearch/internal/grpc"
	"github.com/Belphemur/ShowSearch/internal/testutil"
)

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/shows":
			_, _ = w.Write([]byte(testutil.GenerateSearchJSON([]testutil.ShowOptions{
				{ID: 975, Name: "Batman", Summary: "<p>Holy <b>cow</b></p>", MediumImage: "http://img/975.jpg"},
				{ID: 481, Name: "The Batman", NullImage: true},
			})))
		case "/shows/975/episodes":
			_, _ = w.Write([]byte(testutil.GenerateEpisodesJSON([]testutil.EpisodeOptions{
				{ID: 1, Name: "Pilot", Season: 1, Number: 1},
				{ID: 2, Name: "Fine Finny Fiends", Season: 1, Number: 2},
			})))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ClientTimeout = "5s"
	cmd := newRootCmd(cfg)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCommand_Text(t *testing.T) {
	server := newDirectoryServer(t)

	out, err := runCommand(t, "search", "batman", "--base-url", server.URL)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	for _, want := range []string{"#975 Batman", "Holy cow", "image: http://img/975.jpg", "#481 The Batman", "image: https://tinyurl.com/tv-missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSearchCommand_HTML(t *testing.T) {
	server := newDirectoryServer(t)

	out, err := runCommand(t, "search", "batman", "--base-url", server.URL, "--format", "html")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.Contains(out, `<section id="episodesArea" hidden>`) {
		t.Errorf("Expected the episode panel to be hidden first, got:\n%s", out)
	}
	if !strings.Contains(out, `data-show-id="975"`) || !strings.Contains(out, "<b>cow</b>") {
		t.Errorf("Expected show cards, got:\n%s", out)
	}
}

func TestEpisodesCommand(t *testing.T) {
	server := newDirectoryServer(t)

	out, err := runCommand(t, "episodes", "975", "--base-url", server.URL)
	if err != nil {
		t.Fatalf("episodes failed: %v", err)
	}

	first := strings.Index(out, "Pilot (season 1, episode 1)")
	second := strings.Index(out, "Fine Finny Fiends (season 1, episode 2)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("Expected episodes in order, got:\n%s", out)
	}
}

func TestEpisodesCommand_Errors(t *testing.T) {
	server := newDirectoryServer(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "non numeric id", args: []string{"episodes", "abc", "--base-url", server.URL}},
		{name: "missing id", args: []string{"episodes", "--base-url", server.URL}},
		{name: "unknown show", args: []string{"episodes", "1", "--base-url", server.URL}},
		{name: "unknown format", args: []string{"episodes", "975", "--base-url", server.URL, "--format", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if strings.Contains(out, "Episodes") {
				t.Errorf("Expected nothing rendered on failure, got:\n%s", out)
			}
		})
	}
}

// startRemote serves the gRPC API on a local port, backed by directoryURL
func startRemote(t *testing.T, directoryURL string) string {
	t.Helper()

	cfg := &config.Config{APIBaseURL: directoryURL, ClientTimeout: "5s"}
	directory := client.NewClient(cfg)
	t.Cleanup(func() { _ = directory.Close() })

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	srv := grpcserver.NewGRPCServer(directory)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

func TestCommands_Remote(t *testing.T) {
	addr := startRemote(t, newDirectoryServer(t).URL)

	out, err := runCommand(t, "search", "batman", "--remote", addr)
	if err != nil {
		t.Fatalf("remote search failed: %v", err)
	}
	if !strings.Contains(out, "#975 Batman") || !strings.Contains(out, "image: https://tinyurl.com/tv-missing") {
		t.Errorf("Unexpected remote search output:\n%s", out)
	}

	out, err = runCommand(t, "episodes", "975", "--remote", addr)
	if err != nil {
		t.Fatalf("remote episodes failed: %v", err)
	}
	if !strings.Contains(out, "Pilot (season 1, episode 1)") {
		t.Errorf("Unexpected remote episodes output:\n%s", out)
	}

	if _, err := runCommand(t, "episodes", "1", "--remote", addr); err == nil {
		t.Error("Expected an unknown show to fail through the remote server")
	}
}
