package domain

// Notification role-targeted message delivered through the remote service
// and polled by the dashboard.
type Notification struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"` // target role
	Title     string `json:"title"`
	Message   string `json:"message"`
	Kind      string `json:"kind,omitempty"` // e.g. "bed_request", "referral"
	EntityID  string `json:"entityId,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}
