// Package staff contains the staff Member aggregate and the Role
// classification used to tell hands-on kitchen staff apart from managers and
// administrators. Capacity admission only counts kitchen roles.
package staff

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not created
// through the NewMember or RestoreMember factory methods.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Role classifies a staff member's job.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Chef runs the kitchen and cooks.
	Chef

	// Cook works the stations.
	Cook

	// Prep does advance preparation.
	Prep

	// Manager runs front of house; not counted as kitchen staff.
	Manager

	// Admin administers the system; not counted as kitchen staff.
	Admin
)

// getRoleStrings returns a map of valid Role values to display names.
func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Chef:    "Chef",
		Cook:    "Cook",
		Prep:    "Prep",
		Manager: "Manager",
		Admin:   "Admin",
	}
}

// RoleFromString parses a role case-insensitively.
// Empty or unrecognized strings fail; parsing never defaults.
func RoleFromString(s string) (Role, error) {
	if s == "" {
		return RoleUnknown, errs.NewValueIsRequiredError("role")
	}

	for role, name := range getRoleStrings() {
		if strings.EqualFold(s, name) {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the display name of the role, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsKitchen reports whether the role does hands-on kitchen work.
// Managers and admins are excluded from kitchen capacity calculations.
func (r Role) IsKitchen() bool {
	return r == Chef || r == Cook || r == Prep
}

// Member is a restaurant staff member.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Role must be a defined role
type Member struct {
	id     kernel.UUID
	name   string
	role   Role
	active bool

	isConstructed bool
}

// NewMember creates an active staff Member with validation.
func NewMember(id kernel.UUID, name string, role Role) (*Member, error) {
	m := &Member{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setRole(role),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persistence, including the active flag.
func RestoreMember(id kernel.UUID, name string, role Role, active bool) (*Member, error) {
	m, err := NewMember(id, name, role)
	if err != nil {
		return nil, err
	}

	m.active = active
	return m, nil
}

// Validate ensures the Member was properly constructed through a factory method.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's name.
func (m *Member) Name() string {
	return m.name
}

// Role returns the member's job classification.
func (m *Member) Role() Role {
	return m.role
}

// IsActive reports whether the member is currently on shift.
func (m *Member) IsActive() bool {
	return m.active
}

// IsKitchenStaff reports whether the member counts toward kitchen capacity:
// active and in a hands-on kitchen role.
func (m *Member) IsKitchenStaff() bool {
	return m.active && m.role.IsKitchen()
}

// ClockOut marks the member as off shift.
func (m *Member) ClockOut() {
	m.active = false
}

// ClockIn marks the member as on shift.
func (m *Member) ClockIn() {
	m.active = true
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}
