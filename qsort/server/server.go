package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// Server serves a single sorted dataset via HTTP.
type Server struct {
	http    *http.Server
	handler *handler
	addr    net.Addr
	errc    chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string, ds *Dataset) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	h := newHandler(ds)
	s := &Server{
		http: &http.Server{
			Handler: h,
		},
		handler: h,
		addr:    l.Addr(),
		errc:    make(chan error, 1),
	}

	go func() {
		if err := s.http.Serve(l); err != nil && err != http.ErrServerClosed {
			s.errc <- err
		}
	}()

	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr { return s.addr }

// ReplaceDataset replaces the dataset to serve with the one provided.
func (s *Server) ReplaceDataset(ds *Dataset) {
	s.handler.data.Store(ds)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	return nil
}

// Error returns a channel to listen to errors while serving.
func (s *Server) Error() <-chan error {
	return s.errc
}
