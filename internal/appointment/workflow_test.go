package appointment

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func errKind(t *testing.T, err error) httperr.Kind {
	t.Helper()
	kind, ok := httperr.KindOf(err)
	if !ok {
		t.Fatalf("not a business error: %v", err)
	}
	return kind
}

func validSubmit() SubmitInput {
	return SubmitInput{
		StudentName:     "Anita Gurung",
		Email:           "Anita@Example.com",
		AppointmentType: "counseling",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
	}
}

func TestSubmitForcesNewStatus(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)

	ap, err := wf.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if ap.Status != string(StatusNew) {
		t.Fatalf("status = %q, want %q", ap.Status, StatusNew)
	}
	if ap.Email != "anita@example.com" {
		t.Fatalf("email not normalized: %q", ap.Email)
	}
	if ap.ID == 0 {
		t.Fatalf("appointment not persisted")
	}
}

func TestSubmitValidation(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"blank name", func(in *SubmitInput) { in.StudentName = "   " }},
		{"bad email", func(in *SubmitInput) { in.Email = "not-an-email" }},
		{"unknown type", func(in *SubmitInput) { in.AppointmentType = "astrology" }},
		{"bad date", func(in *SubmitInput) { in.AppointmentDate = "15/09/2026" }},
		{"blank time", func(in *SubmitInput) { in.AppointmentTime = " " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSubmit()
			tc.mutate(&in)

			_, err := wf.Submit(ctx, in)
			if errKind(t, err) != httperr.KindValidation {
				t.Fatalf("err = %v, want validation", err)
			}
		})
	}
}

func TestSetStatusPermissive(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)
	ctx := context.Background()

	ap, err := wf.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := wf.SetStatus(ctx, ap.ID, string(StatusCompleted)); err != nil {
		t.Fatalf("new -> completed: %v", err)
	}

	// Permissive mode allows corrections out of terminal states.
	got, err := wf.SetStatus(ctx, ap.ID, string(StatusNew))
	if err != nil {
		t.Fatalf("completed -> new: %v", err)
	}
	if got.Status != string(StatusNew) {
		t.Fatalf("status = %q, want %q", got.Status, StatusNew)
	}
}

func TestSetStatusStrict(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), true)
	ctx := context.Background()

	ap, err := wf.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := wf.SetStatus(ctx, ap.ID, string(StatusConfirmed)); err != nil {
		t.Fatalf("new -> confirmed: %v", err)
	}
	if _, err := wf.SetStatus(ctx, ap.ID, string(StatusCompleted)); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}

	// Terminal in strict mode.
	_, err = wf.SetStatus(ctx, ap.ID, string(StatusNew))
	if errKind(t, err) != httperr.KindValidation {
		t.Fatalf("completed -> new err = %v, want validation", err)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)
	ctx := context.Background()

	ap, err := wf.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err = wf.SetStatus(ctx, ap.ID, "done")
	if errKind(t, err) != httperr.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}

	_, err = wf.SetStatus(ctx, 9999, string(StatusConfirmed))
	if errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestUpdateCarryForward(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)
	ctx := context.Background()

	ap, err := wf.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	notes := "follow up after documents arrive"
	got, err := wf.Update(ctx, ap.ID, UpdateInput{Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Notes != notes {
		t.Fatalf("notes = %q", got.Notes)
	}
	if got.StudentName != "Anita Gurung" || got.AppointmentType != "counseling" {
		t.Fatalf("absent fields did not carry forward: %+v", got)
	}

	bad := "palmistry"
	if _, err := wf.Update(ctx, ap.ID, UpdateInput{AppointmentType: &bad}); errKind(t, err) != httperr.KindValidation {
		t.Fatalf("invalid type err = %v, want validation", err)
	}

	badStatus := "done"
	if _, err := wf.Update(ctx, ap.ID, UpdateInput{Status: &badStatus}); errKind(t, err) != httperr.KindValidation {
		t.Fatalf("invalid status err = %v, want validation", err)
	}
}

func TestDelete(t *testing.T) {
	wf := NewWorkflow(newTestDB(t), false)
	ctx := context.Background()

	ap, err := wf.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := wf.Delete(ctx, ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := wf.Get(ctx, ap.ID); errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("get after delete err = %v, want not found", err)
	}
	if err := wf.Delete(ctx, ap.ID); errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("second delete err = %v, want not found", err)
	}
}

func TestTransitionGraph(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusNew, StatusConfirmed}:       true,
		{StatusNew, StatusCancelled}:       true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	all := []Status{StatusNew, StatusConfirmed, StatusCompleted, StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			want := from == to || allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
