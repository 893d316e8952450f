package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/massprop-dedup/internal/flow"
	"github.com/massprop-dedup/internal/normalize"
	"github.com/massprop-dedup/internal/table"
)

// NormalizeHandler runs a named workflow over submitted values, so rule
// changes can be previewed against live samples before a batch run.
type NormalizeHandler struct {
	Lookup normalize.CityLookup
}

type normalizeRequest struct {
	Workflow string    `json:"workflow"`
	Values   []*string `json:"values"`
}

type normalizeResponse struct {
	Workflow string    `json:"workflow"`
	Values   []*string `json:"values"`
}

// Normalize handles POST /api/normalize. Nulls in, nulls out: a JSON null
// value stays null, and a blanked value comes back null.
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	workflow, ok := flow.ByName(req.Workflow, h.Lookup)
	if !ok {
		http.Error(w, "unknown workflow: "+req.Workflow, http.StatusBadRequest)
		return
	}

	fields := make([]table.Field, len(req.Values))
	for i, v := range req.Values {
		if v != nil {
			fields[i] = table.String(*v)
		}
	}
	t := table.MustNew(table.TextColumn("value", fields...))
	cleaned := workflow.Run(t, []string{"value"})

	out, _ := cleaned.TextValues("value")
	resp := normalizeResponse{Workflow: workflow.Name, Values: make([]*string, len(out))}
	for i, f := range out {
		if f.Valid {
			s := f.String
			resp.Values[i] = &s
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Workflows handles GET /api/workflows.
func (h *NormalizeHandler) Workflows(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"workflows": flow.Available()})
}

// HealthHandler reports service and reference-data status.
type HealthHandler struct {
	DB *sql.DB
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{"status": "ok"}
	if h.DB != nil {
		var count int
		if err := h.DB.QueryRow(`SELECT COUNT(*) FROM ref_neighborhood`).Scan(&count); err == nil {
			status["neighborhoods"] = count
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
