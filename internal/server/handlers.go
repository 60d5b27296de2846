package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"taskflow/internal/analytics"
	"taskflow/internal/export"
	"taskflow/internal/model"
	"taskflow/internal/store"
	"taskflow/internal/view"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	q := view.Query{
		Search:        r.URL.Query().Get("search"),
		ShowArchived:  parseBool(r.URL.Query().Get("archived")),
		SortByDueDate: parseBool(r.URL.Query().Get("sortByDueDate")),
	}
	writeJSON(w, http.StatusOK, view.Apply(h.store.Snapshot(), q, h.clock.Now()))
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p, err := h.store.CreateProject(req.Name)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) patchProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.Name == nil && req.Color == nil {
		writeErr(w, http.StatusBadRequest, "name or color is required")
		return
	}

	id := mux.Vars(r)["id"]
	var (
		p     model.Project
		found bool
		err   error
	)
	if req.Name != nil {
		p, found, err = h.store.RenameProject(id, *req.Name)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
	}
	if req.Color != nil {
		p, found, err = h.store.RecolorProject(id, model.Color(*req.Color))
		if err != nil {
			writeStoreErr(w, err)
			return
		}
	}
	if !found {
		writeErr(w, http.StatusNotFound, "unknown project")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteProject(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string   `json:"text"`
		Dependencies []string `json:"dependencies"`
		Recurring    *string  `json:"recurring"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	var recurring *model.Recurrence
	if req.Recurring != nil && *req.Recurring != "" {
		rec := model.Recurrence(*req.Recurring)
		recurring = &rec
	}

	t, err := h.store.AddTask(mux.Vars(r)["id"], req.Text, req.Dependencies, recurring)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) patchTask(w http.ResponseWriter, r *http.Request) {
	var patch store.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	vars := mux.Vars(r)
	t, found, err := h.store.UpdateTask(vars["id"], vars["taskId"], patch)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.store.DeleteTask(vars["id"], vars["taskId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, found := h.store.ToggleStatus(vars["id"], vars["taskId"])
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) cyclePriority(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, found := h.store.CyclePriority(vars["id"], vars["taskId"])
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) toggleArchived(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, found := h.store.ToggleArchived(vars["id"], vars["taskId"])
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// setDue accepts either a quick pick ("today", "tomorrow", "nextWeek") or a
// weekday index for a weekly cadence.
func (h *Handler) setDue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pick    *string `json:"pick"`
		Weekday *int    `json:"weekday"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	vars := mux.Vars(r)
	var (
		t     model.Task
		found bool
		err   error
	)
	switch {
	case req.Weekday != nil:
		t, found, err = h.store.SetWeeklyOn(vars["id"], vars["taskId"], *req.Weekday)
	case req.Pick != nil:
		t, found, err = h.store.SetQuickDue(vars["id"], vars["taskId"], store.QuickDue(*req.Pick))
	default:
		writeErr(w, http.StatusBadRequest, "pick or weekday is required")
		return
	}
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) removeDue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	t, found, err := h.store.RemoveDueDate(vars["id"], vars["taskId"])
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if !found {
		writeErr(w, http.StatusNotFound, "unknown task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) reorderTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID  string `json:"projectId"`
		FromTaskID string `json:"fromTaskId"`
		ToTaskID   string `json:"toTaskId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	h.store.ReorderTask(req.ProjectID, req.FromTaskID, req.ToTaskID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.Summarize(h.store.Snapshot(), h.clock.Now()))
}

func (h *Handler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	removed := h.store.ClearCompleted()
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed})
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	if !h.store.Undo() {
		writeErr(w, http.StatusConflict, "nothing to undo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	doc := export.Markdown(h.store.Snapshot(), h.clock.Now())
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="taskflow-export.md"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
