package domain

// PatientCategory drives ward eligibility (see RequiredWard).
type PatientCategory string

const (
	PatientChild    PatientCategory = "child"
	PatientPregnant PatientCategory = "pregnant"
)

// Nutrition status values used by the remote service.
const (
	NutritionNormal               = "normal"
	NutritionMalnourished         = "malnourished"
	NutritionSeverelyMalnourished = "severely_malnourished"
)

// Patient read-mostly snapshot of a remote patient record
type Patient struct {
	ID              string          `json:"id"`
	RegistrationNo  string          `json:"registrationNo"`
	Name            string          `json:"name"`
	Age             int             `json:"age,omitempty"`
	Category        PatientCategory `json:"type"`
	NutritionStatus string          `json:"nutritionStatus"`
	CenterID        string          `json:"centerId,omitempty"`
	GuardianName    string          `json:"guardianName,omitempty"`
	GuardianPhone   string          `json:"guardianPhone,omitempty"`
	BedID           string          `json:"bedId,omitempty"`
}
