package entity

type Role string

const (
	RoleUser      Role = "user"
	RoleCaregiver Role = "caregiver"
	RoleAdmin     Role = "admin"
)

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
	IsActive     bool   `db:"is_active"`
}
