package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentName string `gorm:"size:100;not null" json:"student_name"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Phone       string `gorm:"size:30" json:"phone"`

	AppointmentType string `gorm:"size:50;not null" json:"appointment_type"`
	AppointmentDate string `gorm:"size:20;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:20;not null" json:"appointment_time"`

	PreferredCountry string `gorm:"size:100" json:"preferred_country"`
	Message          string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	// Staff-only fields, never accepted on public submission.
	Notes      string `gorm:"type:text" json:"notes"`
	AssignedTo string `gorm:"size:100" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
