// Package staffrepo provides data transfer objects and mapping functions for staff persistence.
package staffrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting staff members.
type MemberDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   int
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for staff members.
func (MemberDTO) TableName() string {
	return "staff_members"
}

func fromDomain(aggregate *staff.Member) MemberDTO {
	return MemberDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Role:   int(aggregate.Role()),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto MemberDTO) (*staff.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreMember(id, dto.Name, staff.Role(dto.Role), dto.Active)
}
