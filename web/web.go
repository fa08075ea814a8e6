// Package web provides an HTTP server exposing a parsed SIE file.
//
// The server offers a small read-only JSON API over the document:
// company details, accounts, vouchers and a summary. When watching is
// enabled the file is reparsed on changes and connected clients are
// notified over Server-Sent Events.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/forsslund/sie/document"
	"github.com/forsslund/sie/loader"
	"github.com/forsslund/sie/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	mu  sync.RWMutex
	doc *document.Document

	// inputFile is the file path passed to New(), resolved to an absolute
	// path before the watcher is started.
	inputFile string
	loader    *loader.Loader

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(port int, sieFile string, ldr *loader.Loader) *Server {
	return NewWithVersion(port, sieFile, ldr, "", "")
}

func NewWithVersion(port int, sieFile string, ldr *loader.Loader, version, commitSHA string) *Server {
	if ldr == nil {
		ldr = loader.New()
	}
	return &Server{
		Port:      port,
		Host:      "127.0.0.1",
		Version:   version,
		CommitSHA: commitSHA,
		inputFile: sieFile,
		loader:    ldr,
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.inputFile == "" {
		return fmt.Errorf("input file is required")
	}

	s.sseClients = make(map[chan string]struct{})

	loadTimer := timer.Child(fmt.Sprintf("web.load %s", filepath.Base(s.inputFile)))
	if err := s.reload(ctx); err != nil {
		loadTimer.End()
		return fmt.Errorf("failed to load file: %w", err)
	}
	loadTimer.End()

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	mux := s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/company", s.handleGetCompany)
	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/vouchers", s.handleGetVouchers)
	mux.HandleFunc("GET /api/summary", s.handleGetSummary)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// reload parses the file from disk and swaps the document.
// Caller must NOT hold the mutex.
func (s *Server) reload(ctx context.Context) error {
	doc, err := s.loader.Load(ctx, s.inputFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	return nil
}

// startWatcher watches the input file and reloads on changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.inputFile); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.inputFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(ctx, watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleFileChange reloads the document and re-arms the watch.
func (s *Server) handleFileChange(ctx context.Context, watcher *fsnotify.Watcher) {
	if err := s.reload(ctx); err != nil {
		log.Printf("Failed to reload file: %v", err)
		return
	}

	// Re-add to catch atomically replaced files
	if err := watcher.Add(s.inputFile); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.inputFile, err)
	}

	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	events := make(chan string, 1)

	s.sseMu.Lock()
	s.sseClients[events] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, events)
		s.sseMu.Unlock()
		close(events)
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-events:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for client := range s.sseClients {
		select {
		case client <- event:
		default:
			// Client channel full, skip
		}
	}
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
