// Package order provides the Order aggregate of the bakery's B2B ordering
// portal together with its line items and lifecycle statuses.
//
// The package includes:
//   - Order: the aggregate root, owning identity, delivery schedule, status and lines
//   - LineItem: a product/quantity/price entry whose subtotal is fixed when written
//   - Status: the lifecycle state with its transition guard
//   - Unit and Origin: small enums carried by lines and orders
//
// Key business rules:
//   - The order total always equals the sum of its line subtotals
//   - The owning company is derived from the customer location at creation
//   - Orders are never deleted; cancellation is a terminal status
//   - Delivered and cancelled orders cannot change status again
//   - Pending, confirmed and in-production orders can be auto-dispatched
package order
