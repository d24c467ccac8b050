// Package order provides domain entities and business logic for order management
// in the restaurant ordering system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, monetary totals, and lifecycle
//   - Item: An order line with the menu item's price snapshot taken at order time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created in PENDING status with at least one item
//   - Monetary totals are derived from the item snapshots, never client-supplied
//   - Status follows the workflow PENDING -> CONFIRMED -> PREPARING -> ON_THE_WAY -> DELIVERED,
//     with CANCELLED reachable from every non-terminal status
//   - Customers may cancel only while the order is PENDING or CONFIRMED
//   - DELIVERED and CANCELLED are terminal; orders are never physically deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
