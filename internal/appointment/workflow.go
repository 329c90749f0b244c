package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/models"
	"github.com/globalreach-edu/consultancy-api/internal/validators"
)

// Workflow drives a booked appointment through its bounded status
// lifecycle. Appointments are created by the public site and afterwards
// only touched by staff; there is no media and no slug involved.
type Workflow struct {
	db *gorm.DB

	// strict enforces the CanTransition graph on SetStatus. Off by
	// default: the admin console relies on free status correction.
	strict bool
}

func NewWorkflow(db *gorm.DB, strict bool) *Workflow {
	return &Workflow{db: db, strict: strict}
}

// --------- Inputs ---------

type SubmitInput struct {
	StudentName      string `json:"student_name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone"`
	AppointmentType  string `json:"appointment_type" binding:"required"`
	AppointmentDate  string `json:"appointment_date" binding:"required"`
	AppointmentTime  string `json:"appointment_time" binding:"required"`
	PreferredCountry string `json:"preferred_country"`
	Message          string `json:"message"`
}

// UpdateInput carries a sparse staff correction; nil fields keep their
// stored value. Identity and created_at are not part of it by design.
type UpdateInput struct {
	StudentName      *string `json:"student_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	AppointmentType  *string `json:"appointment_type"`
	AppointmentDate  *string `json:"appointment_date"`
	AppointmentTime  *string `json:"appointment_time"`
	PreferredCountry *string `json:"preferred_country"`
	Message          *string `json:"message"`
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
	AssignedTo       *string `json:"assigned_to"`
}

// --------- Operations ---------

// Submit accepts a public booking. Status is forced to "new" no matter
// what the payload claims; the submitter never controls the workflow.
func (w *Workflow) Submit(ctx context.Context, in SubmitInput) (*models.Appointment, error) {
	name := strings.TrimSpace(in.StudentName)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return nil, httperr.Validation("student_name_required")
	}
	if !validators.ValidEmail(email) {
		return nil, httperr.Validation("invalid_email")
	}
	if !ValidType(in.AppointmentType) {
		return nil, httperr.Validation("invalid_appointment_type")
	}
	if _, err := time.Parse("2006-01-02", in.AppointmentDate); err != nil {
		return nil, httperr.Validation("invalid_appointment_date")
	}
	if strings.TrimSpace(in.AppointmentTime) == "" {
		return nil, httperr.Validation("appointment_time_required")
	}

	ap := models.Appointment{
		StudentName:      name,
		Email:            email,
		Phone:            in.Phone,
		AppointmentType:  in.AppointmentType,
		AppointmentDate:  in.AppointmentDate,
		AppointmentTime:  in.AppointmentTime,
		PreferredCountry: in.PreferredCountry,
		Message:          in.Message,
		Status:           string(StatusNew),
	}

	if err := w.db.WithContext(ctx).Create(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (w *Workflow) List(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := w.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (w *Workflow) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := w.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

// SetStatus moves the appointment to any value of the closed vocabulary.
// In strict mode the intended graph applies; terminal states then stay
// terminal.
func (w *Workflow) SetStatus(ctx context.Context, id uint, status string) (*models.Appointment, error) {
	if !ValidStatus(status) {
		return nil, httperr.Validation("invalid_status")
	}

	ap, err := w.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if w.strict && !CanTransition(Status(ap.Status), Status(status)) {
		return nil, httperr.Validation("invalid_status_transition")
	}

	ap.Status = status
	ap.UpdatedAt = time.Now()

	if err := w.db.WithContext(ctx).Save(ap).Error; err != nil {
		return nil, err
	}
	return ap, nil
}

// Update applies a sparse staff correction with carry-forward semantics.
// An empty input is a successful no-op apart from updated_at advancing.
func (w *Workflow) Update(ctx context.Context, id uint, in UpdateInput) (*models.Appointment, error) {
	ap, err := w.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && !ValidStatus(*in.Status) {
		return nil, httperr.Validation("invalid_status")
	}
	if in.AppointmentType != nil && !ValidType(*in.AppointmentType) {
		return nil, httperr.Validation("invalid_appointment_type")
	}

	if in.StudentName != nil {
		ap.StudentName = *in.StudentName
	}
	if in.Email != nil {
		ap.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		ap.Phone = *in.Phone
	}
	if in.AppointmentType != nil {
		ap.AppointmentType = *in.AppointmentType
	}
	if in.AppointmentDate != nil {
		ap.AppointmentDate = *in.AppointmentDate
	}
	if in.AppointmentTime != nil {
		ap.AppointmentTime = *in.AppointmentTime
	}
	if in.PreferredCountry != nil {
		ap.PreferredCountry = *in.PreferredCountry
	}
	if in.Message != nil {
		ap.Message = *in.Message
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.AssignedTo != nil {
		ap.AssignedTo = *in.AssignedTo
	}

	ap.UpdatedAt = time.Now()

	if err := w.db.WithContext(ctx).Save(ap).Error; err != nil {
		return nil, err
	}
	return ap, nil
}

// Delete is a hard delete; there is no soft-delete tier for bookings.
func (w *Workflow) Delete(ctx context.Context, id uint) error {
	ap, err := w.Get(ctx, id)
	if err != nil {
		return err
	}
	return w.db.WithContext(ctx).Delete(ap).Error
}
