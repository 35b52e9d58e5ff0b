package model

// Appointment status. Stored values predate this port ("agendada" =
// scheduled, "concluida" = completed) and are kept so existing store files
// remain readable.
type Status string

const (
	StatusScheduled Status = "agendada"
	StatusCompleted Status = "concluida"
)

// appointments
//
// Date and Time are stored exactly as supplied by the caller (YYYY-MM-DD and
// HH:MM). The past/today/future classification is derived at query time by
// comparing Date against the engine's current date, never stored.
type Appointment struct {
	ID       uint   `gorm:"primaryKey"`
	ClientID uint   `gorm:"not null"`
	DoctorID uint   `gorm:"not null"`
	Date     string `gorm:"type:date;not null"`
	Time     string `gorm:"type:time;not null"`
	Status   Status `gorm:"not null;check:status IN ('agendada','concluida')"`

	Client *Client `gorm:"foreignKey:ClientID"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID"`
}

// AppointmentDetail is the read model for the appointment screens: the
// appointment joined with the referenced client and doctor names.
type AppointmentDetail struct {
	ID         uint
	ClientName string
	DoctorName string
	Date       string
	Time       string
	Status     Status
}
