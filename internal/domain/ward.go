package domain

import "fmt"

// WardCategory enumerates the hospital ward types beds belong to.
// The remote API carries wards as free-form strings; ParseWardCategory is
// applied at data-load time so the allocation workflow never matches on
// unvalidated text.
type WardCategory string

const (
	WardPediatric WardCategory = "Pediatric"
	WardMaternity WardCategory = "Maternity"
	WardNRC       WardCategory = "NRC"
)

// ParseWardCategory maps a wire ward string onto a known category.
// Unknown wards are reported, not rejected: the remote service owns the data
// and hospitals do add wards the dashboard has never seen.
func ParseWardCategory(s string) (WardCategory, bool) {
	switch s {
	case string(WardPediatric):
		return WardPediatric, true
	case string(WardMaternity):
		return WardMaternity, true
	case string(WardNRC):
		return WardNRC, true
	}
	return WardCategory(s), false
}

// RequiredWard declares which ward a patient category is admitted to.
// child -> Pediatric, pregnant -> Maternity. Exact strings on the wire.
func RequiredWard(category PatientCategory) (WardCategory, error) {
	switch category {
	case PatientChild:
		return WardPediatric, nil
	case PatientPregnant:
		return WardMaternity, nil
	}
	return "", fmt.Errorf("no ward mapping for patient category %q", category)
}
