package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/utdemir/composable-indexes/internal/session"
	"github.com/utdemir/composable-indexes/snapshot"
)

// Server exposes the session store demo over HTTP: open/touch/lookup
// sessions and list per-user or stale ones, exactly the shape of
// queries a composed Grouped+BTree+HashUnique index tree is meant to
// answer in O(log n) or better.
type Server struct {
	mu    sync.Mutex
	store *session.Store
	data  string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"session_count": s.store.Len(),
		"active_users":  session.ActiveUserCount(s.store),
	})
}

func (s *Server) HandleOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	id, ref := session.Open(s.store, req.UserID, time.Now().Unix())
	s.mu.Unlock()

	log.Printf("[open] user_id=%s id=%d ref=%s", req.UserID, int64(id), ref)
	writeJSON(w, http.StatusOK, map[string]any{"id": int64(id), "ref": ref})
}

func (s *Server) HandleTouch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Ref string `json:"ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ref, err := uuid.Parse(req.Ref)
	if err != nil {
		http.Error(w, "ref must be a uuid", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := session.Lookup(s.store, ref)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	session.Touch(s.store, item.Id, time.Now().Unix())

	writeJSON(w, http.StatusOK, map[string]any{"status": "touched"})
}

func (s *Server) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ref, err := uuid.Parse(r.URL.Query().Get("ref"))
	if err != nil {
		http.Error(w, "ref must be a uuid", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	item, ok := session.Lookup(s.store, ref)
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"found": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"found":     true,
		"id":        int64(item.Id),
		"user_id":   item.Value.UserID,
		"last_seen": item.Value.LastSeen,
	})
}

func (s *Server) HandleUserSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	items := session.SessionsForUser(s.store, userID)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) HandleStale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ttl := time.Hour
	if raw := r.URL.Query().Get("ttl"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			http.Error(w, "ttl must be a duration", http.StatusBadRequest)
			return
		}
		ttl = parsed
	}

	cutoff := time.Now().Add(-ttl).Unix()

	s.mu.Lock()
	items := session.StaleBefore(s.store, cutoff)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	err := s.snapshot()
	s.mu.Unlock()

	if err != nil {
		log.Printf("[snapshot] failed: %v", err)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "snapshotted"})
}

func (s *Server) snapshot() error {
	b, err := snapshot.Open(s.data)
	if err != nil {
		return err
	}
	defer b.Close()
	return session.SaveTo(s.store, b)
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/sessions/open", s.HandleOpen)
	mux.HandleFunc("/sessions/touch", s.HandleTouch)
	mux.HandleFunc("/sessions/lookup", s.HandleLookup)
	mux.HandleFunc("/sessions/by_user", s.HandleUserSessions)
	mux.HandleFunc("/sessions/stale", s.HandleStale)
	mux.HandleFunc("/snapshot", s.HandleSnapshot)
	return mux
}

func main() {
	var (
		addr = flag.String("addr", ":8080", "listen address")
		data = flag.String("data", "sessions.db", "bbolt snapshot file")
	)
	flag.Parse()

	store := session.NewStore()

	if b, err := snapshot.Open(*data); err == nil {
		n, err := session.LoadInto(store, b)
		b.Close()
		if err != nil {
			log.Fatalf("failed to restore snapshot: %v", err)
		}
		log.Printf("[demo] restored %d sessions from %s", n, *data)
	}

	srv := &Server{store: store, data: *data}

	log.Printf("[demo] composable-indexes session server listening on %s (data=%s)", *addr, *data)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
