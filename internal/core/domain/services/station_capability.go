package services

import (
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/station"
)

// StationCapability decides whether a station can take on an order's recipes.
// It is the extension point for equipment and skill matching: a production
// implementation can compare station kinds against recipe requirements,
// while the default accepts every pairing.
type StationCapability interface {
	// CanPrepare returns nil if the station can handle every item of the
	// order, or a business rule error describing the mismatch.
	CanPrepare(s *station.Station, o *order.Order) error
}

// AllowAllCapability accepts every station/order pairing. This is the default
// capability used until recipes carry equipment requirements.
type AllowAllCapability struct{}

// NewAllowAllCapability creates the permissive default capability.
func NewAllowAllCapability() AllowAllCapability {
	return AllowAllCapability{}
}

// CanPrepare always reports the station as capable.
func (AllowAllCapability) CanPrepare(_ *station.Station, _ *order.Order) error {
	return nil
}
