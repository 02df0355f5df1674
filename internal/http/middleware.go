package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"poshan-board/internal/access"
	"poshan-board/internal/gateway"
	"poshan-board/internal/service"
	"poshan-board/internal/session"
)

// API binds the controller to the HTTP surface.
type API struct {
	ctrl   *service.Controller
	logger *zap.Logger
}

func NewAPI(ctrl *service.Controller, logger *zap.Logger) *API {
	return &API{ctrl: ctrl, logger: logger}
}

// sessionHandler runs next with a resolved session. Expired or missing
// sessions answer 401 with the token-expired envelope. A non-empty feature
// id additionally gates on the role allow-list. Requests do not count as
// activity for the idle monitor: only the explicit activity endpoint resets
// the timer, so background polling cannot keep a session alive.
func (a *API) sessionHandler(feature string, next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		sess, err := a.ctrl.CurrentSession(r.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotLoggedIn) {
				writeJSON(w, http.StatusUnauthorized, TokenExpired())
				return
			}
			a.logger.Error("Failed to resolve session", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("session lookup failed"))
			return
		}

		if feature != "" && !access.HasAccess(sess.Role, feature) {
			writeJSON(w, http.StatusForbidden, Fail("access denied"))
			return
		}
		next(w, r, sess)
	}
}

// writeCommandError maps workflow and gateway errors onto the envelope.
// Business-rule rejections stay HTTP 200 with a warning envelope; upstream
// failures surface as 502 so the frontend can show the transport banner.
func (a *API) writeCommandError(w http.ResponseWriter, err error) {
	var noCapacity *service.NoCapacityError
	if errors.As(err, &noCapacity) {
		writeJSON(w, http.StatusOK, Warn(err.Error()))
		return
	}
	switch {
	case errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrPatientNotFound):
		writeJSON(w, http.StatusOK, Warn(err.Error()))
		return
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, http.StatusBadGateway, Fail(err.Error()))
		return
	}
	a.logger.Error("Command failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
}

// loggingHandler emits one debug line per request.
func loggingHandler(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}
