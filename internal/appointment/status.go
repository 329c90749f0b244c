package appointment

type Status string

const (
	StatusNew       Status = "new"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNew, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition encodes the intended workflow graph: new can be
// confirmed or cancelled, confirmed can be completed or cancelled,
// completed and cancelled are terminal. It is only enforced when the
// workflow runs in strict mode; the default is permissive so staff can
// re-open a terminal appointment to correct mistakes.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusNew:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// AppointmentTypes is the closed vocabulary the public booking form
// offers.
var AppointmentTypes = []string{"counseling", "ielts", "visa", "general"}

func ValidType(t string) bool {
	for _, v := range AppointmentTypes {
		if v == t {
			return true
		}
	}
	return false
}
