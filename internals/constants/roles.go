package constants

// Role global user (dipakai middleware & controller)
const (
	RoleAdmin  = "admin"
	RoleFarmer = "farmer"
)
