package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"poshan-board/internal/report"
	"poshan-board/internal/session"
)

// ReportHandler serves GET /dash/api/v1/reports/beds.xlsx: the bed-occupancy
// and patient-register workbook as a download.
func (a *API) ReportHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}

	beds, err := a.ctrl.Remote().ListBeds(r.Context())
	if err != nil {
		a.writeCommandError(w, err)
		return
	}
	patients, err := a.ctrl.Remote().ListPatients(r.Context())
	if err != nil {
		a.writeCommandError(w, err)
		return
	}

	data, err := report.Generate(beds, patients)
	if err != nil {
		a.logger.Error("Report generation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("report generation failed"))
		return
	}

	filename := fmt.Sprintf("bed-occupancy-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
