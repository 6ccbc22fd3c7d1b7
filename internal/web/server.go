package web

import (
	"fmt"
	"log"
	"net/http"

	"wifiwatch/internal/database"
)

// Server exposes the scan history as a JSON API
type Server struct {
	db   *database.DB
	port int
}

// New creates a new web server
func New(db *database.DB, port int) *Server {
	return &Server{
		db:   db,
		port: port,
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/networks", s.handleNetworks)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/strongest", s.handleStrongest)
	mux.HandleFunc("/api/bands", s.handleBands)
	mux.HandleFunc("/api/signal", s.handleSignal)
	mux.HandleFunc("/api/interfaces", s.handleInterfaces)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Printf("Web server starting on port %d", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.routes())
}
