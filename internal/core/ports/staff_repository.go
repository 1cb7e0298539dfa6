package ports

import (
	"context"

	"kitchen/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff members.
type StaffRepository interface {
	// Add persists a new staff member.
	Add(ctx context.Context, aggregate *staff.Member) error

	// GetAllActiveKitchenStaff retrieves every member currently on shift in a
	// hands-on kitchen role (managers and admins excluded). The count feeds
	// capacity admission control.
	GetAllActiveKitchenStaff(ctx context.Context) ([]*staff.Member, error)
}
