package domain

// Role is one of the four fixed account roles.
type Role string

const (
	RoleWorker     Role = "anganwadi_worker"
	RoleSupervisor Role = "supervisor"
	RoleHospital   Role = "hospital"
	RoleAdmin      Role = "admin"
)

// KnownRole reports whether the wire role string is one of the fixed variants.
func KnownRole(s string) bool {
	switch Role(s) {
	case RoleWorker, RoleSupervisor, RoleHospital, RoleAdmin:
		return true
	}
	return false
}
