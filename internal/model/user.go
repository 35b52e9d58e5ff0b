package model

// Role gates access to the user-management screens in the front end.
// The stored value "padrao" is the standard (non-admin) role; the value is
// kept as-is so existing store files remain readable.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "padrao"
)

// users
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Username string `gorm:"not null;uniqueIndex"`
	Password []byte `gorm:"not null" json:"-"`
	Email    string `gorm:"not null;uniqueIndex"`
	Role     Role   `gorm:"not null;check:role IN ('admin','padrao')"`
}
