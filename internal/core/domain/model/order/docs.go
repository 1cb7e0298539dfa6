// Package order contains the Order aggregate and its value objects.
//
// The package implements the kitchen order lifecycle following Domain-Driven
// Design principles:
//
//   - Order: The aggregate root managing the lifecycle from creation through
//     kitchen work to completion or cancellation
//   - Item: An order line holding a recipe snapshot, quantity, and its own
//     preparation progress
//   - Status: A state machine value object controlling the order lifecycle
//   - Priority: A bounded ordinal value object with escalation semantics
//
// All types enforce their invariants through guarded constructors; state can
// only change through validated methods, so an Order obtained from this
// package is always in a consistent state.
package order
