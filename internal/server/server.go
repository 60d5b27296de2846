// Package server exposes the task store over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"taskflow/internal/clock"
	"taskflow/internal/httpmw"
	"taskflow/internal/store"
)

type Options struct {
	Store  *store.Store
	Clock  clock.Clock
	Logger *log.Logger
}

type Handler struct {
	store  *store.Store
	clock  clock.Clock
	logger *log.Logger
}

// NewHandler builds the full HTTP stack: routes, CORS, compression and the
// request-id/access-log/recover middleware chain.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := &Handler{store: opts.Store, clock: opts.Clock, logger: opts.Logger}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", h.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/projects", h.listProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", h.createProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", h.patchProject).Methods(http.MethodPatch)
	api.HandleFunc("/projects/{id}", h.deleteProject).Methods(http.MethodDelete)

	api.HandleFunc("/projects/{id}/tasks", h.addTask).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/tasks/{taskId}", h.patchTask).Methods(http.MethodPatch)
	api.HandleFunc("/projects/{id}/tasks/{taskId}", h.deleteTask).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{id}/tasks/{taskId}/status", h.toggleStatus).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/tasks/{taskId}/priority", h.cyclePriority).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/tasks/{taskId}/archive", h.toggleArchived).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/tasks/{taskId}/due", h.setDue).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/tasks/{taskId}/due", h.removeDue).Methods(http.MethodDelete)

	api.HandleFunc("/tasks/reorder", h.reorderTask).Methods(http.MethodPost)
	api.HandleFunc("/analytics", h.analytics).Methods(http.MethodGet)
	api.HandleFunc("/completed/clear", h.clearCompleted).Methods(http.MethodPost)
	api.HandleFunc("/undo", h.undo).Methods(http.MethodPost)
	api.HandleFunc("/export", h.export).Methods(http.MethodGet)

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
	)

	return httpmw.Chain(
		ghandlers.CompressHandler(cors(r)),
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	), nil
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "taskflow",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(out)
}

// writeStoreErr maps store errors onto status codes. Validation failures are
// the caller's fault; anything else is a 500.
func writeStoreErr(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		writeErr(w, http.StatusBadRequest, verr.Error())
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}
