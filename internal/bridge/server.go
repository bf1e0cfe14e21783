// Package bridge exposes the query tools as a minimal JSON-RPC 2.0 API
// over HTTP, for hosts without an MCP SDK. It speaks the same tool names
// and result shapes as the stdio MCP server, wrapped in MCP-style
// content blocks.
package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/debug"
)

// Server is the HTTP JSON-RPC bridge.
type Server struct {
	server   *http.Server
	ds       *dataset.Dataset
	shutdown chan struct{}
}

// NewServer creates the bridge listening on the given port.
func NewServer(port int, ds *dataset.Dataset) *Server {
	s := &Server{
		ds:       ds,
		shutdown: make(chan struct{}),
	}

	router := mux.NewRouter()
	router.HandleFunc("/jsonrpc", s.handleJSONRPC).Methods("POST")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
	return s
}

// Start serves until Shutdown is called, a shutdown JSON-RPC request
// arrives, or the listener fails.
func (s *Server) Start() error {
	debug.LogBridge("listening on %s\n", s.server.Addr)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the bridge.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ShutdownRequested is closed when a client sends the shutdown method.
func (s *Server) ShutdownRequested() <-chan struct{} {
	return s.shutdown
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
