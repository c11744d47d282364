package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for postliste.
// The dataset is loaded on first use and kept for the server's lifetime.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu sync.Mutex
	ds *domain.Dataset
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "postliste",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// dataset returns the loaded dataset, loading it on first use.
// A failed load is not cached, so the next call retries.
func (s *Server) dataset(ctx context.Context) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ds != nil {
		return s.ds, nil
	}

	ds, err := s.ports.Dataset.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("mcp: loaded %d records", ds.Len())
	s.ds = ds
	return ds, nil
}
