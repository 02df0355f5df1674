package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"poshan-board/internal/access"
	"poshan-board/internal/session"
)

// Login authenticates against the remote service and opens a session.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		EmployeeID string `json:"employee_id"`
	}
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if body.Username == "" || body.Password == "" {
		writeJSON(w, http.StatusBadRequest, Fail("username and password are required"))
		return
	}

	result, err := a.ctrl.Login(r.Context(), body.Username, body.Password, body.EmployeeID)
	if err != nil {
		// Credential failures are expected traffic; the envelope carries the
		// message and the status stays 200 for the frontend interceptor.
		a.logger.Warn("Login rejected", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}

// Logout clears the session. Always succeeds from the caller's view.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token != "" {
		if err := a.ctrl.Logout(r.Context(), token); err != nil {
			a.logger.Warn("Logout cleanup failed", zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "logged out"}))
}

// Session returns the current identity plus the idle-warning flag the view
// uses to pop the "still there?" dialog.
func (a *API) Session(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"user":        sess.User,
		"role":        sess.Role,
		"loginTime":   sess.LoginTime.UnixMilli(),
		"features":    access.Features(sess.Role),
		"idleWarning": a.ctrl.Idle().Warned(sess.Token),
	}))
}

// Activity records a qualifying input event (mouse/keyboard/touch/scroll)
// or a warning acknowledgement; either resets the idle timer.
func (a *API) Activity(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	a.ctrl.Idle().Touch(sess.Token)
	writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
}

// Menu returns the role-gated navigation items.
func (a *API) Menu(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, Ok(access.Features(sess.Role)))
}
