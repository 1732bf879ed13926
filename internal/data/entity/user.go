package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// IsValid reports whether r is one of the closed set of roles.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	FullName     *string  `db:"full_name"`
	Email        *string  `db:"email"`
}
