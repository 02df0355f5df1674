package httpapi

import (
	"net/http"
	"strings"

	"poshan-board/internal/domain"
	"poshan-board/internal/session"
)

// BedRequestHandler serves /dash/api/v1/bed-requests and the review commands.
//
//	GET  /bed-requests                list
//	POST /bed-requests                create (worker)
//	POST /bed-requests/{id}/approve   allocate a bed (supervisor)
//	POST /bed-requests/{id}/decline   decline, optional referral (supervisor)
//	POST /bed-requests/{id}/cancel    cancel own pending request (worker)
func (a *API) BedRequestHandler(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	rest := strings.TrimPrefix(r.URL.Path, "/dash/api/v1/bed-requests")
	rest = strings.TrimPrefix(rest, "/")

	switch {
	case rest == "" && r.Method == http.MethodGet:
		a.listBedRequests(w, r)
	case rest == "" && r.Method == http.MethodPost:
		a.createBedRequest(w, r, sess)
	case strings.HasSuffix(rest, "/approve") && r.Method == http.MethodPost:
		a.approveBedRequest(w, r, sess, strings.TrimSuffix(rest, "/approve"))
	case strings.HasSuffix(rest, "/decline") && r.Method == http.MethodPost:
		a.declineBedRequest(w, r, sess, strings.TrimSuffix(rest, "/decline"))
	case strings.HasSuffix(rest, "/cancel") && r.Method == http.MethodPost:
		a.cancelBedRequest(w, r, strings.TrimSuffix(rest, "/cancel"))
	default:
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	}
}

func (a *API) listBedRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := a.ctrl.Remote().ListBedRequests(r.Context())
	if err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(requests))
}

func (a *API) createBedRequest(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var request domain.BedRequest
	if err := readBodyJSON(r, 1<<20, &request); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if request.PatientID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("patientId is required"))
		return
	}
	if request.RequestedBy == "" {
		request.RequestedBy = sess.User.Name
	}
	created, err := a.ctrl.CreateBedRequest(r.Context(), request)
	if err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(created))
}

func (a *API) approveBedRequest(w http.ResponseWriter, r *http.Request, sess *session.Session, requestID string) {
	if requestID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("request id is required"))
		return
	}
	result, err := a.ctrl.ApproveBedRequest(r.Context(), requestID, sess.User.Name)
	if err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}

func (a *API) declineBedRequest(w http.ResponseWriter, r *http.Request, sess *session.Session, requestID string) {
	if requestID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("request id is required"))
		return
	}
	var body struct {
		Comments string                   `json:"comments"`
		Referral *domain.HospitalReferral `json:"referral"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if err := a.ctrl.DeclineBedRequest(r.Context(), requestID, sess.User.Name, body.Comments, body.Referral); err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"requestId": requestID, "status": domain.RequestDeclined}))
}

func (a *API) cancelBedRequest(w http.ResponseWriter, r *http.Request, requestID string) {
	if requestID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("request id is required"))
		return
	}
	if err := a.ctrl.CancelBedRequest(r.Context(), requestID); err != nil {
		a.writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"requestId": requestID, "status": domain.RequestCancelled}))
}
