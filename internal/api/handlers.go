package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"BitMonitor/internal/feeds"
	"BitMonitor/internal/period"
	"BitMonitor/internal/projection"
	"BitMonitor/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"ws_clients": s.hub.ClientCount(),
	})
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	quotes := s.service.Quotes()
	if len(quotes) == 0 {
		writeError(w, http.StatusServiceUnavailable, "quotes not available yet")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("period")
	if token == "" {
		token = string(period.OneDay)
	}
	p, err := period.Parse(token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := s.service.Chart(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	limit := s.sentimentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	readings, err := s.service.Sentiment(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": readings})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	snaps, err := s.store.RecentSnapshots(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": snaps})
}

func (s *Server) handleETFs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"etfs": s.etfs.Quotes()})
}

func (s *Server) handleGetProjection(w http.ResponseWriter, r *http.Request) {
	res, ok := s.service.Projection()
	if !ok {
		writeError(w, http.StatusNotFound, "projection inputs incomplete")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSetProjection(w http.ResponseWriter, r *http.Request) {
	var in projection.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid projection payload")
		return
	}
	res, ok := s.service.SetProjection(in)
	if !ok {
		// inputs accepted but incomplete; no result exists
		writeJSON(w, http.StatusAccepted, map[string]interface{}{"complete": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"complete": true, "result": res})
}

func (s *Server) handleClearProjection(w http.ResponseWriter, r *http.Request) {
	s.service.ClearProjection()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles, err := s.news.Latest(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "could not fetch news")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": s.events.Upcoming(r.Context())})
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"places": feeds.Places()})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListPosts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text  string `json:"texto"`
		Image string `json:"imagem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid post payload")
		return
	}
	if payload.Text == "" {
		writeError(w, http.StatusBadRequest, "texto is required")
		return
	}
	post, err := s.store.CreatePost(payload.Text, payload.Image)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"post": post})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeletePost(id); err != nil {
		if err == store.ErrNotFound {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.HandleConnection(s.ctx, w, r)
}
