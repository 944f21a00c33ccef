// ABOUTME: MCP server setup for the wellness tracker.
// ABOUTME: Wraps the MCP server around a Store shared with the rest of the process.
package mcp

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/store"
)

// ErrNoStore is returned by NewServer without a store.
var ErrNoStore = errors.New("mcp: no store")

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     store.Store
	now       func() time.Time
	logger    *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithClock sets the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger sets the logger for tool calls.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a new MCP server over st.
func NewServer(st store.Store, opts ...Option) (*Server, error) {
	if st == nil {
		return nil, ErrNoStore
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wellness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		now:       time.Now,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) today() string {
	return models.DateOf(s.now())
}

// dateOr returns date, or today when it is empty.
func (s *Server) dateOr(date string) string {
	if date == "" {
		return s.today()
	}
	return date
}
