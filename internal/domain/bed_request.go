package domain

// Bed request urgency values.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Bed request status values. pending is the only non-terminal state:
// pending -> approved | declined | cancelled, no transitions out of those.
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestDeclined  = "declined"
	RequestCancelled = "cancelled"
)

// HospitalReferral escalation record attached when a reviewer refers the
// patient out instead of plainly declining.
type HospitalReferral struct {
	HospitalName string `json:"hospitalName"`
	Contact      string `json:"contact,omitempty"`
	Reason       string `json:"reason"`
	Urgency      string `json:"urgency"`
	ReferralDate string `json:"referralDate"` // YYYY-MM-DD
}

// BedRequest admission request raised by an anganwadi worker and reviewed by
// a supervisor.
type BedRequest struct {
	ID             string            `json:"id"`
	PatientID      string            `json:"patientId"`
	RequestedBy    string            `json:"requestedBy,omitempty"`
	Urgency        string            `json:"urgency"`
	Reason         string            `json:"reason,omitempty"`
	Status         string            `json:"status"`
	RequestDate    string            `json:"requestDate,omitempty"`
	ReviewedBy     string            `json:"reviewedBy,omitempty"`
	ReviewDate     string            `json:"reviewDate,omitempty"`
	ReviewComments string            `json:"reviewComments,omitempty"`
	Referral       *HospitalReferral `json:"referral,omitempty"`
}
