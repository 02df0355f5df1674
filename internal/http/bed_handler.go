package httpapi

import (
	"net/http"
	"strings"

	"poshan-board/internal/session"
)

// BedHandler serves /dash/api/v1/beds and the per-bed commands.
//
//	GET  /beds                   list
//	POST /beds/{id}/discharge    free the bed
//	POST /beds/{id}/maintenance  toggle maintenance (body: {"underMaintenance": bool})
func (a *API) BedHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	rest := strings.TrimPrefix(r.URL.Path, "/dash/api/v1/beds")
	rest = strings.TrimPrefix(rest, "/")

	switch {
	case rest == "" && r.Method == http.MethodGet:
		a.listBeds(w, r)
	case strings.HasSuffix(rest, "/discharge") && r.Method == http.MethodPost:
		a.dischargeBed(w, r, strings.TrimSuffix(rest, "/discharge"))
	case strings.HasSuffix(rest, "/maintenance") && r.Method == http.MethodPost:
		a.bedMaintenance(w, r, strings.TrimSuffix(rest, "/maintenance"))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

func (a *API) listBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := a.ctrl.Remote().ListBeds(r.Context())
	if err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(beds))
}

func (a *API) dischargeBed(w http.ResponseWriter, r *http.Request, bedID string) {
	if bedID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("bed id is required"))
		return
	}
	if err := a.ctrl.DischargeBed(r.Context(), bedID); err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"bedId": bedID, "status": "available"}))
}

func (a *API) bedMaintenance(w http.ResponseWriter, r *http.Request, bedID string) {
	if bedID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("bed id is required"))
		return
	}
	var body struct {
		UnderMaintenance bool `json:"underMaintenance"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if err := a.ctrl.SetBedMaintenance(r.Context(), bedID, body.UnderMaintenance); err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"bedId": bedID, "underMaintenance": body.UnderMaintenance}))
}
