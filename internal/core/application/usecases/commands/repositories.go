// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RecipeRepoFactory provides access to the recipe repository within a transaction.
	RecipeRepoFactory interface {
		RecipeRepository() ports.RecipeRepository
	}

	// StationRepoFactory provides access to the station repository within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only read and modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order admission: the candidate
	// order plus the recipe lookups and staff count the capacity checks need.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		RecipeRepoFactory
		StaffRepoFactory
	}

	// CreateOrderUoWFactory creates new order-admission unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AssignStationUoW manages transactions for routing orders to stations.
	AssignStationUoW interface {
		TxManager
		OrderRepoFactory
		StationRepoFactory
	}

	// AssignStationUoWFactory creates new station-assignment unit of work instances.
	AssignStationUoWFactory interface {
		Create() AssignStationUoW
	}
)
