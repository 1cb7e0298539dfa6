package order

import (
	"time"

	"kitchen/internal/pkg/errs"
)

// Priority is a bounded ordinal value object expressing how urgently an order
// must be worked. Levels run from Low (1) to Critical (5); each level carries
// fixed escalation and preparation deadlines that shrink as the level rises.
//
// Priority is immutable: Escalate returns a new value and never mutates the
// receiver. Construction outside the [Low, Critical] range fails.
type Priority int

const (
	// Low is routine work with the most generous deadlines.
	Low Priority = iota + 1

	// Medium is the default urgency for regular orders.
	Medium

	// High marks orders that should jump ahead of routine work.
	High

	// Urgent marks orders that need attention from the next free cook.
	Urgent

	// Critical is the ceiling. Escalation saturates here.
	Critical
)

// getPriorityStrings returns a map of Priority values to their display names.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:      "Low",
		Medium:   "Medium",
		High:     "High",
		Urgent:   "Urgent",
		Critical: "Critical",
	}
}

// getEscalationTimeouts returns how long an order may sit at each priority
// before it is escalated one level. The timeouts are fixed and strictly
// decreasing as priority rises.
func getEscalationTimeouts() map[Priority]time.Duration {
	return map[Priority]time.Duration{
		Low:      60 * time.Minute,
		Medium:   30 * time.Minute,
		High:     15 * time.Minute,
		Urgent:   5 * time.Minute,
		Critical: 2 * time.Minute,
	}
}

// getMaxPreparationTimes returns the preparation deadline for each priority.
// Fixed and strictly decreasing as priority rises.
func getMaxPreparationTimes() map[Priority]time.Duration {
	return map[Priority]time.Duration{
		Low:      45 * time.Minute,
		Medium:   30 * time.Minute,
		High:     20 * time.Minute,
		Urgent:   10 * time.Minute,
		Critical: 5 * time.Minute,
	}
}

// NewPriority creates a Priority from a numeric level.
// Levels outside [1, 5] fail with a ValueIsOutOfRangeError.
func NewPriority(level int) (Priority, error) {
	p := Priority(level)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks that the priority level is within [Low, Critical].
func (p Priority) Validate() error {
	if p < Low || p > Critical {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(Low), int(Critical))
	}
	return nil
}

// String returns the display name of the priority, or "Unknown" for
// out-of-range values. Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Level returns the numeric level of the priority.
func (p Priority) Level() int {
	return int(p)
}

// Escalate returns a Priority one level higher, saturating at Critical.
// Escalating Critical returns Critical.
func (p Priority) Escalate() Priority {
	if p >= Critical {
		return Critical
	}
	return p + 1
}

// IsHigherThan reports whether p outranks other.
func (p Priority) IsHigherThan(other Priority) bool {
	return p > other
}

// IsLowerThan reports whether other outranks p.
func (p Priority) IsLowerThan(other Priority) bool {
	return p < other
}

// IsEqual reports whether both priorities are at the same level.
func (p Priority) IsEqual(other Priority) bool {
	return p == other
}

// IsHigh reports whether the priority is High or above.
func (p Priority) IsHigh() bool {
	return p >= High
}

// RequiresImmediateAttention reports whether the priority is Urgent or above.
func (p Priority) RequiresImmediateAttention() bool {
	return p >= Urgent
}

// EscalationTimeout returns how long an order may remain at this priority
// before escalation. Returns zero for invalid priorities.
func (p Priority) EscalationTimeout() time.Duration {
	return getEscalationTimeouts()[p]
}

// MaxPreparationTime returns the preparation deadline for this priority.
// Returns zero for invalid priorities.
func (p Priority) MaxPreparationTime() time.Duration {
	return getMaxPreparationTimes()[p]
}
