package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"poshan-board/internal/access"
)

// Router wraps the standard library http.ServeMux. A third-party router buys
// nothing here: the path space is small and the per-feature gating lives in
// sessionHandler, not in route matching.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler returns the full chain with request logging applied.
func (r *Router) Handler() http.Handler {
	return loggingHandler(r.logger, r.mux)
}

// RegisterAuthRoutes wires the session lifecycle endpoints.
func (r *Router) RegisterAuthRoutes(a *API) {
	r.Handle("/auth/api/v1/login", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		a.Login(w, req)
	})
	r.Handle("/auth/api/v1/logout", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		a.Logout(w, req)
	})
	r.Handle("/auth/api/v1/session", a.sessionHandler("", a.Session))
	r.Handle("/auth/api/v1/activity", a.sessionHandler("", a.Activity))
}

// RegisterDashboardRoutes wires the feature-gated dashboard endpoints.
func (r *Router) RegisterDashboardRoutes(a *API) {
	r.Handle("/dash/api/v1/menu", a.sessionHandler("", a.Menu))

	r.Handle("/dash/api/v1/patients", a.sessionHandler(access.FeaturePatients, a.PatientHandler))
	r.Handle("/dash/api/v1/patients/", a.sessionHandler(access.FeaturePatients, a.PatientHandler))

	r.Handle("/dash/api/v1/beds", a.sessionHandler(access.FeatureBeds, a.BedHandler))
	r.Handle("/dash/api/v1/beds/", a.sessionHandler(access.FeatureBeds, a.BedHandler))

	r.Handle("/dash/api/v1/bed-requests", a.sessionHandler(access.FeatureBedRequests, a.BedRequestHandler))
	r.Handle("/dash/api/v1/bed-requests/", a.sessionHandler(access.FeatureBedRequests, a.BedRequestHandler))

	r.Handle("/dash/api/v1/notifications", a.sessionHandler(access.FeatureNotifications, a.NotificationHandler))
	r.Handle("/dash/api/v1/notifications/", a.sessionHandler(access.FeatureNotifications, a.NotificationHandler))

	r.Handle("/dash/api/v1/centers", a.sessionHandler(access.FeatureCenters, a.CenterHandler))
	r.Handle("/dash/api/v1/centers/", a.sessionHandler(access.FeatureCenters, a.CenterHandler))

	r.Handle("/dash/api/v1/workers", a.sessionHandler(access.FeatureWorkers, a.WorkerHandler))
	r.Handle("/dash/api/v1/workers/", a.sessionHandler(access.FeatureWorkers, a.WorkerHandler))

	r.Handle("/dash/api/v1/surveys", a.sessionHandler(access.FeatureSurveys, a.SurveyHandler))

	r.Handle("/dash/api/v1/treatment-trackers", a.sessionHandler(access.FeatureTreatment, a.TreatmentHandler))
	r.Handle("/dash/api/v1/treatment-trackers/", a.sessionHandler(access.FeatureTreatment, a.TreatmentHandler))

	r.Handle("/dash/api/v1/reports/beds.xlsx", a.sessionHandler(access.FeatureReports, a.ReportHandler))
}

// RegisterAdminRoutes wires the admin-only account management endpoints.
func (r *Router) RegisterAdminRoutes(a *API) {
	r.Handle("/admin/api/v1/users", a.sessionHandler(access.FeatureUsers, a.UserHandler))
	r.Handle("/admin/api/v1/users/", a.sessionHandler(access.FeatureUsers, a.UserHandler))
}
