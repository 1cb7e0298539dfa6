// Package station contains the Station aggregate: a physical kitchen work
// area (grill, fry, salad, pastry, expedite) that orders are routed to.
package station

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrStationIsNotConstructed is returned when a Station instance was not created
// through the NewStation or RestoreStation factory methods.
var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

// Kind classifies what a station is equipped to produce.
type Kind int

const (
	// KindUnknown represents an invalid or undefined station kind.
	KindUnknown Kind = iota

	// Grill handles grilled and seared dishes.
	Grill

	// Fry handles the fryers.
	Fry

	// Salad handles cold preparation.
	Salad

	// Pastry handles desserts and baking.
	Pastry

	// Expedite is the pass where finished plates are assembled.
	Expedite
)

// getKindStrings returns a map of valid Kind values to display names.
func getKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Grill:    "Grill",
		Fry:      "Fry",
		Salad:    "Salad",
		Pastry:   "Pastry",
		Expedite: "Expedite",
	}
}

// KindFromString parses a station kind case-insensitively.
// Empty or unrecognized strings fail; parsing never defaults.
func KindFromString(s string) (Kind, error) {
	if s == "" {
		return KindUnknown, errs.NewValueIsRequiredError("station kind")
	}

	for kind, name := range getKindStrings() {
		if strings.EqualFold(s, name) {
			return kind, nil
		}
	}

	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("station kind",
		fmt.Errorf("%q is not a known station kind", s))
}

// Validate checks that the kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("station kind",
			fmt.Errorf("%d is not a valid station kind", k))
	}
	return nil
}

// String returns the display name of the kind, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Station is a kitchen work area orders can be assigned to.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Kind must be a defined station kind
type Station struct {
	id     kernel.UUID
	name   string
	kind   Kind
	active bool

	isConstructed bool
}

// NewStation creates an active Station with validation.
func NewStation(id kernel.UUID, name string, kind Kind) (*Station, error) {
	s := &Station{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setKind(kind),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a Station from persistence, including its active flag.
func RestoreStation(id kernel.UUID, name string, kind Kind, active bool) (*Station, error) {
	s, err := NewStation(id, name, kind)
	if err != nil {
		return nil, err
	}

	s.active = active
	return s, nil
}

// Validate ensures the Station was properly constructed through a factory method.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// IsEqual compares two stations by their unique identifiers.
func (s *Station) IsEqual(other *Station) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// Name returns the station name.
func (s *Station) Name() string {
	return s.name
}

// Kind returns what the station is equipped to produce.
func (s *Station) Kind() Kind {
	return s.kind
}

// IsActive reports whether the station is currently staffed and taking work.
func (s *Station) IsActive() bool {
	return s.active
}

// Deactivate takes the station out of service. Orders can no longer be routed to it.
func (s *Station) Deactivate() {
	s.active = false
}

// Activate puts the station back in service.
func (s *Station) Activate() {
	s.active = true
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Station) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}
