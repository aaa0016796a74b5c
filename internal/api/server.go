// Package api hosts the HTTP surface of the dashboard backend.
package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"BitMonitor/internal/dashboard"
	"BitMonitor/internal/feeds"
	"BitMonitor/internal/store"
	"BitMonitor/internal/ws"
)

// Server is the HTTP API server.
type Server struct {
	router     *mux.Router
	httpServer *http.Server

	service *dashboard.Service
	store   store.Store
	news    *feeds.NewsClient
	events  *feeds.EventsClient
	etfs    *feeds.ETFTable
	hub     *ws.Hub
	ctx     context.Context

	sentimentLimit int
}

// NewServer creates the server and sets up all routes. sentimentLimit is
// the default history depth for the sentiment endpoint.
func NewServer(ctx context.Context, addr string, svc *dashboard.Service, st store.Store,
	news *feeds.NewsClient, events *feeds.EventsClient, etfs *feeds.ETFTable, hub *ws.Hub,
	sentimentLimit int) *Server {
	s := &Server{
		service:        svc,
		store:          st,
		news:           news,
		events:         events,
		etfs:           etfs,
		hub:            hub,
		ctx:            ctx,
		sentimentLimit: sentimentLimit,
	}
	s.setupRoutes()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
	)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      cors(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)

	apiV1 := s.router.PathPrefix("/api/v1").Subrouter()

	apiV1.HandleFunc("/health", s.handleHealth).Methods("GET")

	// market data
	apiV1.HandleFunc("/quotes", s.handleQuotes).Methods("GET")
	apiV1.HandleFunc("/chart", s.handleChart).Methods("GET")
	apiV1.HandleFunc("/sentiment", s.handleSentiment).Methods("GET")
	apiV1.HandleFunc("/history", s.handleHistory).Methods("GET")
	apiV1.HandleFunc("/etfs", s.handleETFs).Methods("GET")

	// projection calculator
	apiV1.HandleFunc("/projection", s.handleGetProjection).Methods("GET")
	apiV1.HandleFunc("/projection", s.handleSetProjection).Methods("PUT", "POST")
	apiV1.HandleFunc("/projection", s.handleClearProjection).Methods("DELETE")

	// content feeds
	apiV1.HandleFunc("/news", s.handleNews).Methods("GET")
	apiV1.HandleFunc("/events", s.handleEvents).Methods("GET")
	apiV1.HandleFunc("/places", s.handlePlaces).Methods("GET")

	// diary posts
	apiV1.HandleFunc("/posts", s.handleListPosts).Methods("GET")
	apiV1.HandleFunc("/posts", s.handleCreatePost).Methods("POST")
	apiV1.HandleFunc("/posts/{id}", s.handleDeletePost).Methods("DELETE")

	// live quote stream
	apiV1.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server in the background.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] api server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] api server: %v", err)
		}
	}()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down api server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[INFO] %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[ERROR] panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
