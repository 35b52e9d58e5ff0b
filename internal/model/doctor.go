package model

// doctors
type Doctor struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Phone string
	Email *string `gorm:"uniqueIndex"`
	// CRM is the medical license identifier.
	CRM string `gorm:"column:crm;not null;uniqueIndex"`
}
