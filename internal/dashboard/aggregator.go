package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/models"
)

// Snapshot is a read-time projection for the admin landing view. It is
// never persisted and advisory only; no invariant depends on it.
type Snapshot struct {
	TotalClasses      int64            `json:"totalClasses"`
	TotalPrograms     int64            `json:"totalPrograms"`
	TotalEnquiries    int64            `json:"totalEnquiries"`
	NewEnquiries      int64            `json:"newEnquiries"`
	TotalAppointments int64            `json:"totalAppointments"`
	NewAppointments   int64            `json:"newAppointments"`
	RecentEnquiries   []models.Enquiry `json:"recentEnquiries"`
}

type Aggregator struct {
	db *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Snapshot issues independent counts against each store. The counts are
// not taken in one transaction; slight skew between them is acceptable
// for a dashboard. Read failures propagate as-is.
func (a *Aggregator) Snapshot(ctx context.Context) (*Snapshot, error) {
	db := a.db.WithContext(ctx)
	var snap Snapshot

	counts := []struct {
		dest  *int64
		model any
		where []any
	}{
		{&snap.TotalClasses, &models.Class{}, nil},
		{&snap.TotalPrograms, &models.Program{}, nil},
		{&snap.TotalEnquiries, &models.Enquiry{}, nil},
		{&snap.NewEnquiries, &models.Enquiry{}, []any{"status = ?", "new"}},
		{&snap.TotalAppointments, &models.Appointment{}, nil},
		{&snap.NewAppointments, &models.Appointment{}, []any{"status = ?", "new"}},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&snap.RecentEnquiries).Error; err != nil {
		return nil, err
	}

	return &snap, nil
}
