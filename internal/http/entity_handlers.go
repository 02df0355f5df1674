package httpapi

import (
	"net/http"
	"strings"

	"poshan-board/internal/domain"
	"poshan-board/internal/session"
)

// Passthrough handlers: plain list/create/update against the remote service
// with no workflow logic beyond the feature gate.

// PatientHandler serves /dash/api/v1/patients[/{id}].
func (a *API) PatientHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := pathID(r.URL.Path, "/dash/api/v1/patients/")

	switch {
	case r.URL.Path == "/dash/api/v1/patients" && r.Method == http.MethodGet:
		patients, err := a.ctrl.Remote().ListPatients(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(patients))
	case r.URL.Path == "/dash/api/v1/patients" && r.Method == http.MethodPost:
		var patient domain.Patient
		if err := readBodyJSON(r, 1<<20, &patient); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreatePatient(r.Context(), patient)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	case id != "" && r.Method == http.MethodPut:
		var fields map[string]any
		if err := readBodyJSON(r, 1<<20, &fields); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if err := a.ctrl.Remote().UpdatePatient(r.Context(), id, fields); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"patientId": id}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// NotificationHandler serves /dash/api/v1/notifications and the read marker.
// Listing is always scoped to the caller's own role.
func (a *API) NotificationHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	rest := strings.TrimPrefix(r.URL.Path, "/dash/api/v1/notifications")
	rest = strings.TrimPrefix(rest, "/")

	switch {
	case rest == "" && r.Method == http.MethodGet:
		notifications, err := a.ctrl.Remote().NotificationsForRole(r.Context(), sess.Role)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(notifications))
	case strings.HasSuffix(rest, "/read") && r.Method == http.MethodPost:
		id := strings.TrimSuffix(rest, "/read")
		if id == "" {
			writeJSON(w, http.StatusBadRequest, Fail("notification id is required"))
			return
		}
		if err := a.ctrl.Remote().MarkNotificationRead(r.Context(), id); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"notificationId": id}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// UserHandler serves /admin/api/v1/users[/{id}]. Admin only; DELETE is a
// soft-deactivation upstream, the account record survives.
func (a *API) UserHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := pathID(r.URL.Path, "/admin/api/v1/users/")

	switch {
	case r.URL.Path == "/admin/api/v1/users" && r.Method == http.MethodGet:
		users, err := a.ctrl.Remote().ListUsers(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(users))
	case r.URL.Path == "/admin/api/v1/users" && r.Method == http.MethodPost:
		var user domain.User
		if err := readBodyJSON(r, 1<<20, &user); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreateUser(r.Context(), user)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	case id != "" && r.Method == http.MethodPut:
		var fields map[string]any
		if err := readBodyJSON(r, 1<<20, &fields); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if err := a.ctrl.Remote().UpdateUser(r.Context(), id, fields); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"userId": id}))
	case id != "" && r.Method == http.MethodDelete:
		if err := a.ctrl.Remote().DeactivateUser(r.Context(), id); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"userId": id, "status": "deactivated"}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// CenterHandler serves /dash/api/v1/centers[/{id}].
func (a *API) CenterHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := pathID(r.URL.Path, "/dash/api/v1/centers/")

	switch {
	case r.URL.Path == "/dash/api/v1/centers" && r.Method == http.MethodGet:
		centers, err := a.ctrl.Remote().ListCenters(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(centers))
	case r.URL.Path == "/dash/api/v1/centers" && r.Method == http.MethodPost:
		var center domain.AnganwadiCenter
		if err := readBodyJSON(r, 1<<20, &center); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreateCenter(r.Context(), center)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	case id != "" && r.Method == http.MethodPut:
		var fields map[string]any
		if err := readBodyJSON(r, 1<<20, &fields); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if err := a.ctrl.Remote().UpdateCenter(r.Context(), id, fields); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"centerId": id}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// WorkerHandler serves /dash/api/v1/workers[/{id}].
func (a *API) WorkerHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := pathID(r.URL.Path, "/dash/api/v1/workers/")

	switch {
	case r.URL.Path == "/dash/api/v1/workers" && r.Method == http.MethodGet:
		workers, err := a.ctrl.Remote().ListWorkers(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(workers))
	case r.URL.Path == "/dash/api/v1/workers" && r.Method == http.MethodPost:
		var worker domain.Worker
		if err := readBodyJSON(r, 1<<20, &worker); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreateWorker(r.Context(), worker)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	case id != "" && r.Method == http.MethodPut:
		var fields map[string]any
		if err := readBodyJSON(r, 1<<20, &fields); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if err := a.ctrl.Remote().UpdateWorker(r.Context(), id, fields); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"workerId": id}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// SurveyHandler serves /dash/api/v1/surveys.
func (a *API) SurveyHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	switch {
	case r.URL.Path == "/dash/api/v1/surveys" && r.Method == http.MethodGet:
		surveys, err := a.ctrl.Remote().ListSurveys(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(surveys))
	case r.URL.Path == "/dash/api/v1/surveys" && r.Method == http.MethodPost:
		var survey domain.Survey
		if err := readBodyJSON(r, 1<<20, &survey); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreateSurvey(r.Context(), survey)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

// TreatmentHandler serves /dash/api/v1/treatment-trackers[/{id}].
func (a *API) TreatmentHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id := pathID(r.URL.Path, "/dash/api/v1/treatment-trackers/")

	switch {
	case r.URL.Path == "/dash/api/v1/treatment-trackers" && r.Method == http.MethodGet:
		trackers, err := a.ctrl.Remote().ListTreatmentTrackers(r.Context())
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(trackers))
	case r.URL.Path == "/dash/api/v1/treatment-trackers" && r.Method == http.MethodPost:
		var tracker domain.TreatmentTracker
		if err := readBodyJSON(r, 1<<20, &tracker); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := a.ctrl.Remote().CreateTreatmentTracker(r.Context(), tracker)
		if err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(created))
	case id != "" && r.Method == http.MethodPut:
		var fields map[string]any
		if err := readBodyJSON(r, 1<<20, &fields); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		if err := a.ctrl.Remote().UpdateTreatmentTracker(r.Context(), id, fields); err != nil {
			a.writeCommandError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]string{"trackerId": id}))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}
