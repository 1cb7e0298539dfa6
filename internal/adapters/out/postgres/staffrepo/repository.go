package staffrepo

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff member to the database.
func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllActiveKitchenStaff retrieves every member on shift in a hands-on
// kitchen role. Managers and admins are excluded because they do not count
// toward cooking capacity.
func (r *GormStaffRepository) GetAllActiveKitchenStaff(ctx context.Context) ([]*staff.Member, error) {
	var dtos []MemberDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "active = ? AND role IN (?, ?, ?)", true, staff.Chef, staff.Cook, staff.Prep).Error
	if err != nil {
		return nil, err
	}

	members := make([]*staff.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}
