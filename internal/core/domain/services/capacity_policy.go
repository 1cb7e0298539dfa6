package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kitchen/internal/pkg/errs"
)

// ErrKitchenConfigIsNotConstructed is returned when a KitchenConfig was not created
// through the NewKitchenConfig factory method.
var ErrKitchenConfigIsNotConstructed = errors.New("KitchenConfig must be created via NewKitchenConfig constructor")

// KitchenConfig carries the tunable limits of the capacity policy. It is
// read-only after construction and always passed in explicitly; no component
// reads capacity limits from process-wide state.
type KitchenConfig struct {
	maxConcurrentOrders   int
	maxPreparationTime    time.Duration
	criticalCapacityRatio float64
	ordersPerStaff        int

	isConstructed bool
}

// NewKitchenConfig creates a validated KitchenConfig.
//
// Parameters:
//   - maxConcurrentOrders: hard ceiling on simultaneously active orders (> 0)
//   - maxPreparationTime: ceiling on a single order's total preparation time (> 0)
//   - criticalCapacityRatio: fraction of the ceiling at which intake stops, in (0, 1]
//   - ordersPerStaff: how many active orders one kitchen staff member can carry (> 0)
func NewKitchenConfig(
	maxConcurrentOrders int,
	maxPreparationTime time.Duration,
	criticalCapacityRatio float64,
	ordersPerStaff int,
) (KitchenConfig, error) {
	if maxConcurrentOrders <= 0 {
		return KitchenConfig{}, errs.NewValueIsInvalidErrorWithCause("maxConcurrentOrders",
			fmt.Errorf("%d is not greater than 0", maxConcurrentOrders))
	}
	if maxPreparationTime <= 0 {
		return KitchenConfig{}, errs.NewValueIsInvalidErrorWithCause("maxPreparationTime",
			fmt.Errorf("%s is not greater than 0", maxPreparationTime))
	}
	if criticalCapacityRatio <= 0 || criticalCapacityRatio > 1 {
		return KitchenConfig{}, errs.NewValueIsOutOfRangeError("criticalCapacityRatio",
			criticalCapacityRatio, 0.0, 1.0)
	}
	if ordersPerStaff <= 0 {
		return KitchenConfig{}, errs.NewValueIsInvalidErrorWithCause("ordersPerStaff",
			fmt.Errorf("%d is not greater than 0", ordersPerStaff))
	}

	return KitchenConfig{
		maxConcurrentOrders:   maxConcurrentOrders,
		maxPreparationTime:    maxPreparationTime,
		criticalCapacityRatio: criticalCapacityRatio,
		ordersPerStaff:        ordersPerStaff,
		isConstructed:         true,
	}, nil
}

// Validate ensures the config was created through NewKitchenConfig.
func (c KitchenConfig) Validate() error {
	if !c.isConstructed {
		return ErrKitchenConfigIsNotConstructed
	}
	return nil
}

// MaxConcurrentOrders returns the hard ceiling on active orders.
func (c KitchenConfig) MaxConcurrentOrders() int {
	return c.maxConcurrentOrders
}

// MaxPreparationTime returns the ceiling on a single order's total preparation time.
func (c KitchenConfig) MaxPreparationTime() time.Duration {
	return c.maxPreparationTime
}

// CriticalThreshold returns the active-order count at which intake stops,
// derived from the configured ratio of the concurrency ceiling.
func (c KitchenConfig) CriticalThreshold() int {
	return int(math.Ceil(c.criticalCapacityRatio * float64(c.maxConcurrentOrders)))
}

// IsAtCriticalCapacity reports whether activeOrders has reached the critical threshold.
func (c KitchenConfig) IsAtCriticalCapacity(activeOrders int) bool {
	return activeOrders >= c.CriticalThreshold()
}

// CapacityRecommendation returns the operational advice for an overloaded
// kitchen: add staff when the crew is stretched past its orders-per-staff
// ratio, reduce intake otherwise.
func (c KitchenConfig) CapacityRecommendation(activeOrders, staffCount int) string {
	if staffCount == 0 || activeOrders > staffCount*c.ordersPerStaff {
		return "add kitchen staff before accepting more orders"
	}
	return "reduce order intake until the backlog clears"
}

// CapacityPolicy is a stateless domain service deciding whether the kitchen
// may accept another order. It combines a hard critical-capacity gate, a
// general concurrency check, a staff sufficiency check, and an independent
// per-order complexity ceiling.
//
// The policy reads current load as plain counts; sampling those counts and
// making the decision is the caller's transaction concern, so two concurrent
// admissions can both pass on the same snapshot. Closing that race requires a
// reservation step at the store, not in this policy.
//
// Example usage:
//
//	cfg, _ := NewKitchenConfig(20, 90*time.Minute, 0.9, 4)
//	policy, _ := NewCapacityPolicy(cfg)
//
//	if err := policy.AdmitOrder(activeOrders, kitchenStaff); err != nil {
//	    // Kitchen cannot take the order right now
//	    return err
//	}
type CapacityPolicy struct {
	config KitchenConfig
}

// NewCapacityPolicy creates a CapacityPolicy around a validated KitchenConfig.
func NewCapacityPolicy(config KitchenConfig) (CapacityPolicy, error) {
	if err := config.Validate(); err != nil {
		return CapacityPolicy{}, err
	}
	return CapacityPolicy{config: config}, nil
}

// Config returns the policy's configuration.
func (p CapacityPolicy) Config() KitchenConfig {
	return p.config
}

// AdmitOrder decides whether one more order may enter the kitchen.
//
// Checks, in order:
//  1. Hard critical-capacity gate: once active orders reach the critical
//     threshold, intake stops regardless of other factors. The error carries
//     a load-based recommendation.
//  2. Concurrency ceiling: the candidate must fit under maxConcurrentOrders.
//  3. Staff sufficiency: the crew must be able to carry the resulting load at
//     the configured orders-per-staff ratio.
//
// Returns nil when the order may be accepted, or a BusinessRuleViolationError
// describing the failed check.
func (p CapacityPolicy) AdmitOrder(activeOrders, kitchenStaff int) error {
	if p.config.IsAtCriticalCapacity(activeOrders) {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"kitchen is at critical capacity (%d of %d active orders): %s",
			activeOrders,
			p.config.MaxConcurrentOrders(),
			p.config.CapacityRecommendation(activeOrders, kitchenStaff),
		))
	}

	if activeOrders+1 > p.config.MaxConcurrentOrders() {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"kitchen cannot take more than %d concurrent orders",
			p.config.MaxConcurrentOrders(),
		))
	}

	requiredStaff := int(math.Ceil(float64(activeOrders+1) / float64(p.config.ordersPerStaff)))
	if kitchenStaff < requiredStaff {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"not enough kitchen staff: %d on shift, %d needed for %d active orders",
			kitchenStaff, requiredStaff, activeOrders+1,
		))
	}

	return nil
}

// CheckComplexity verifies that a candidate order's total preparation time
// fits under the configured ceiling. The check is independent of current
// load: an order too complex to cook in time is rejected even by an idle
// kitchen. The error references the computed total.
func (p CapacityPolicy) CheckComplexity(totalPreparationTime time.Duration) error {
	if totalPreparationTime > p.config.MaxPreparationTime() {
		return errs.NewValueIsOutOfRangeError(
			"total preparation time",
			totalPreparationTime.String(),
			0,
			p.config.MaxPreparationTime().String(),
		)
	}
	return nil
}
