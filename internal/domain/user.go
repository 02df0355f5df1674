package domain

// User dashboard account (owned by the remote auth service)
type User struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	CenterID   string `json:"centerId,omitempty"`   // anganwadi workers only
	HospitalID string `json:"hospitalId,omitempty"` // hospital staff only
	Active     bool   `json:"active"`
}
