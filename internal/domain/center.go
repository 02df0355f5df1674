package domain

// AnganwadiCenter local community health post where frontline workers are
// based. Capacity counts are declared here but do not gate admissions.
type AnganwadiCenter struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	District      string `json:"district,omitempty"`
	Block         string `json:"block,omitempty"`
	Address       string `json:"address,omitempty"`
	ChildCapacity int    `json:"childCapacity,omitempty"`
	WomenCapacity int    `json:"womenCapacity,omitempty"`
}

// Worker frontline anganwadi worker record (distinct from the User account).
type Worker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	CenterID string `json:"centerId"`
	Role     string `json:"role,omitempty"` // e.g. "AWW", "helper"
}
