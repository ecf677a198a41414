package dashserver

import (
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"strconv"

	"github.com/aqdash-org/aqdash/internal/dashboard"
	"github.com/aqdash-org/aqdash/internal/log"
	"github.com/aqdash-org/aqdash/internal/types"
)

// Handlers contains all HTTP handlers for the dashboard server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
	}
}

// ViewResponse is the payload for the /api/view endpoint: the echoed
// parameter snapshot, the three summary statistics, and the chart
// specification for the rendering layer.
type ViewResponse struct {
	Params types.ViewParams   `json:"params"`
	Stats  types.SummaryStats `json:"stats"`
	Chart  types.ChartSpec    `json:"chart"`
	Count  int                `json:"count"`
}

// RecordsResponse is the payload for the /api/records endpoint
type RecordsResponse struct {
	Count   int            `json:"count"`
	Records []types.Record `json:"records"`
}

// GetView recomputes the dashboard view model for the parameters
// carried in the query string
func (h *Handlers) GetView(w http.ResponseWriter, req *http.Request) {
	view, err := h.parseViewParams(req)
	if err != nil {
		log.Debugf("invalid view request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filtered := dashboard.FilterByMonth(h.controller.records, view.Filter)
	stats, chart := dashboard.BuildWithSpan(filtered, view, h.controller.dashCfg.TrendSpan)

	resp := ViewResponse{
		Params: view,
		Stats:  stats,
		Chart:  chart,
		Count:  len(filtered),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("error encoding view response: %v", err)
	}
}

// GetRecords returns the filtered raw rows for the current month range
func (h *Handlers) GetRecords(w http.ResponseWriter, req *http.Request) {
	filter, err := h.parseFilterParams(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filtered := dashboard.FilterByMonth(h.controller.records, filter)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RecordsResponse{Count: len(filtered), Records: filtered}); err != nil {
		log.Errorf("error encoding records response: %v", err)
	}
}

// GetHealth reports service liveness and the loaded record count
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"records": len(h.controller.records),
	})
}

// ServeIndexTemplate serves the dashboard page with configured defaults
func (h *Handlers) ServeIndexTemplate(w http.ResponseWriter, req *http.Request) {
	tmpl, err := htmltemplate.ParseFS(h.controller.FS, "index.html")
	if err != nil {
		log.Errorf("error parsing index template: %v", err)
		http.Error(w, "error parsing template", http.StatusInternalServerError)
		return
	}

	data := struct {
		Title       string
		DefaultMode string
		MonthMin    int
		MonthMax    int
	}{
		Title:       h.controller.dashCfg.Title,
		DefaultMode: h.controller.dashCfg.DefaultMode,
		MonthMin:    types.MonthMin,
		MonthMax:    types.MonthMax,
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, data); err != nil {
		log.Errorf("error executing index template: %v", err)
	}
}

// parseViewParams builds the full parameter snapshot from the query
// string. Missing parameters fall back to the configured defaults;
// malformed ones are rejected. Out-of-range month bounds are accepted
// here and clamped by the filter.
func (h *Handlers) parseViewParams(req *http.Request) (types.ViewParams, error) {
	var view types.ViewParams

	modeStr := req.URL.Query().Get("mode")
	if modeStr == "" {
		modeStr = h.controller.dashCfg.DefaultMode
	}
	mode, err := types.ParsePlotMode(modeStr)
	if err != nil {
		return view, err
	}

	showTrend := false
	if trendStr := req.URL.Query().Get("trend"); trendStr != "" {
		showTrend, err = strconv.ParseBool(trendStr)
		if err != nil {
			return view, fmt.Errorf("invalid trend parameter: %q", trendStr)
		}
	}

	filter, err := h.parseFilterParams(req)
	if err != nil {
		return view, err
	}

	view.Mode = mode
	view.ShowTrend = showTrend
	view.Filter = filter
	return view, nil
}

// parseFilterParams extracts the month bounds, defaulting to the full
// dataset range
func (h *Handlers) parseFilterParams(req *http.Request) (types.FilterParams, error) {
	filter := types.FilterParams{
		MonthMin: types.MonthMin,
		MonthMax: types.MonthMax,
	}

	var err error
	if s := req.URL.Query().Get("month_min"); s != "" {
		filter.MonthMin, err = strconv.Atoi(s)
		if err != nil {
			return filter, fmt.Errorf("invalid month_min parameter: %q", s)
		}
	}
	if s := req.URL.Query().Get("month_max"); s != "" {
		filter.MonthMax, err = strconv.Atoi(s)
		if err != nil {
			return filter, fmt.Errorf("invalid month_max parameter: %q", s)
		}
	}

	return filter, nil
}
