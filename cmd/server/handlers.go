package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"github.com/mv-archer/repoworld-engine/internal/ws"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, &ServiceError{Code: code, Message: message})
}

// countRequests wraps a handler with the per-route request counter.
func countRequests(metrics *Metrics, route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// handleLayout serves the current layout snapshot.
func handleLayout(manager *LayoutManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET")
			return
		}
		snapshot := manager.Snapshot()
		if snapshot == nil {
			writeError(w, http.StatusServiceUnavailable, "NO_LAYOUT", "no layout generated yet")
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

type generateRequestBody struct {
	Commit string `json:"commit"`
}

// handleGenerate regenerates the layout for a new commit and returns
// the fresh snapshot. This is where version-control webhooks land.
func handleGenerate(manager *LayoutManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
			return
		}
		var body generateRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
			return
		}
		snapshot, err := manager.Generate(body.Commit)
		if err != nil {
			log.Printf("generate request failed: %v", err)
			writeError(w, http.StatusUnprocessableEntity, "GENERATION_FAILED", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// handleWS upgrades the connection and keeps it subscribed to layout
// events until the client goes away.
func handleWS(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Printf("websocket accept failed: %v", err)
			return
		}
		hub.Add(conn)
		defer func() {
			hub.Remove(conn)
			_ = conn.Close(websocket.StatusNormalClosure, "")
		}()

		ctx := context.Background()
		for {
			// Subscribers only listen; reads just detect disconnects.
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
