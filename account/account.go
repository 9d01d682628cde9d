package account

import "errors"

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Contact              string `json:"contact"`
	Role                 string `json:"role"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

func (u User) IsStaff() bool {
	return IsStaffRole(u.Role)
}

func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}
