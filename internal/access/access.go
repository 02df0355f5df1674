package access

import "poshan-board/internal/domain"

// Feature identifiers gate navigation items and their backing endpoints.
const (
	FeatureDashboard     = "dashboard"
	FeaturePatients      = "patients"
	FeatureSurveys       = "surveys"
	FeatureBedRequests   = "bed-requests"
	FeatureBeds          = "beds"
	FeatureTreatment     = "treatment-trackers"
	FeatureNotifications = "notifications"
	FeatureCenters       = "centers"
	FeatureWorkers       = "workers"
	FeatureUsers         = "users"
	FeatureReports       = "reports"
)

// Wildcard grants every feature (admin only).
const Wildcard = "*"

// roleFeatures is the fixed allow-list. Order matters: Features returns the
// menu in this order.
var roleFeatures = map[domain.Role][]string{
	domain.RoleWorker: {
		FeatureDashboard,
		FeaturePatients,
		FeatureSurveys,
		FeatureBedRequests,
		FeatureNotifications,
	},
	domain.RoleSupervisor: {
		FeatureDashboard,
		FeaturePatients,
		FeatureBedRequests,
		FeatureCenters,
		FeatureWorkers,
		FeatureNotifications,
		FeatureReports,
	},
	domain.RoleHospital: {
		FeatureDashboard,
		FeaturePatients,
		FeatureBeds,
		FeatureTreatment,
		FeatureNotifications,
	},
	domain.RoleAdmin: {Wildcard},
}

// allFeatures expands the wildcard for menu rendering.
var allFeatures = []string{
	FeatureDashboard,
	FeaturePatients,
	FeatureSurveys,
	FeatureBedRequests,
	FeatureBeds,
	FeatureTreatment,
	FeatureNotifications,
	FeatureCenters,
	FeatureWorkers,
	FeatureUsers,
	FeatureReports,
}

// HasAccess reports whether the role may reach the feature.
// Unknown roles have no access; absence from the map is empty permissions,
// not a fault.
func HasAccess(role domain.Role, featureID string) bool {
	features, ok := roleFeatures[role]
	if !ok {
		return false
	}
	for _, f := range features {
		if f == Wildcard || f == featureID {
			return true
		}
	}
	return false
}

// Features returns the navigation items reachable by the role, wildcard
// expanded. The returned slice is a copy.
func Features(role domain.Role) []string {
	features, ok := roleFeatures[role]
	if !ok {
		return nil
	}
	if len(features) == 1 && features[0] == Wildcard {
		features = allFeatures
	}
	out := make([]string, len(features))
	copy(out, features)
	return out
}
