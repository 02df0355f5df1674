package domain

// Bed status values.
const (
	BedAvailable   = "available"
	BedOccupied    = "occupied"
	BedMaintenance = "maintenance"
)

// Bed hospital bed snapshot.
// Invariant the workflow assumes (the remote service does not enforce it):
// PatientID is set iff Status == occupied.
type Bed struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	Ward          string `json:"ward"` // raw wire value; see WardCategory
	Status        string `json:"status"`
	PatientID     string `json:"patientId,omitempty"`
	AdmissionDate string `json:"admissionDate,omitempty"` // YYYY-MM-DD
}

// WardCategory parses the raw ward string. The bool mirrors ParseWardCategory.
func (b Bed) WardCategory() (WardCategory, bool) {
	return ParseWardCategory(b.Ward)
}
