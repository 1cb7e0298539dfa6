// Package stationrepo provides data transfer objects and mapping functions for station persistence.
package stationrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting kitchen stations.
type StationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Kind   int
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for stations.
func (StationDTO) TableName() string {
	return "stations"
}

func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Kind:   int(aggregate.Kind()),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, dto.Name, station.Kind(dto.Kind), dto.Active)
}
