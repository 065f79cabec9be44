package attendance

import "fmt"

type OutcomeKind string

const (
	OutcomeArrivalAccepted   OutcomeKind = "arrival_accepted"
	OutcomeArrivalLate       OutcomeKind = "arrival_late"
	OutcomeArrivalRejected   OutcomeKind = "arrival_rejected"
	OutcomeArrivalDuplicate  OutcomeKind = "arrival_duplicate"
	OutcomeDepartureAccepted OutcomeKind = "departure_accepted"
	OutcomeDepartureRejected OutcomeKind = "departure_rejected"
	OutcomeNoPendingAction   OutcomeKind = "no_pending_action"
)

// ReasonNoOpenArrival is the only reason a departure is rejected.
const ReasonNoOpenArrival = "no_open_arrival"

// Outcome is the result of processing one location report.
type Outcome struct {
	Kind           OutcomeKind
	DistanceMeters float64
	DelayMinutes   int
	Reason         string
	Attendance     *Attendance
}

// Message renders the outcome as the text shown to the user in chat.
func (o Outcome) Message() string {
	meters := int(o.DistanceMeters)
	switch o.Kind {
	case OutcomeArrivalAccepted:
		return fmt.Sprintf("✅ Приход отмечен. Расстояние: %d м. Без опоздания.", meters)
	case OutcomeArrivalLate:
		return fmt.Sprintf("⚠️ Опоздание на %d минут.", o.DelayMinutes)
	case OutcomeArrivalRejected:
		return fmt.Sprintf("❌ Вне офиса. Расстояние: %d м.", meters)
	case OutcomeArrivalDuplicate:
		return "❗ Приход уже отмечен сегодня."
	case OutcomeDepartureAccepted:
		return fmt.Sprintf("✅ Уход отмечен. Расстояние: %d м.", meters)
	case OutcomeDepartureRejected:
		return "❗ Сначала отметь приход."
	case OutcomeNoPendingAction:
		return "Сначала выбери действие."
	default:
		return ""
	}
}

// Accepted reports whether the ledger was written.
func (o Outcome) Accepted() bool {
	switch o.Kind {
	case OutcomeArrivalAccepted, OutcomeArrivalLate, OutcomeDepartureAccepted:
		return true
	}
	return false
}
