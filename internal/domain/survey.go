package domain

// Survey field nutrition survey captured by a worker during a home or
// center visit.
type Survey struct {
	ID              string  `json:"id"`
	PatientID       string  `json:"patientId"`
	WorkerID        string  `json:"workerId,omitempty"`
	SurveyDate      string  `json:"surveyDate"` // YYYY-MM-DD
	WeightKg        float64 `json:"weightKg,omitempty"`
	HeightCm        float64 `json:"heightCm,omitempty"`
	MUACcm          float64 `json:"muacCm,omitempty"` // mid-upper arm circumference
	NutritionStatus string  `json:"nutritionStatus,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// TreatmentTracker per-admission treatment progress maintained by hospital
// staff while a patient occupies a bed.
type TreatmentTracker struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patientId"`
	BedID         string  `json:"bedId,omitempty"`
	Day           int     `json:"day"`
	WeightKg      float64 `json:"weightKg,omitempty"`
	Appetite      string  `json:"appetite,omitempty"` // e.g. "poor", "improving", "good"
	Complications string  `json:"complications,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	RecordedBy    string  `json:"recordedBy,omitempty"`
	RecordDate    string  `json:"recordDate,omitempty"`
}
