// Package services contains the time-dependent business rules of the order
// lifecycle. They are pure functions of an order, a date and an instant, so
// command handlers decide when "now" is and the rules stay testable.
//
//   - CutoffPolicy: how soon a new order may be delivered, depending on the hour it is placed
//   - AutoDispatchPolicy: when an order due today is considered out for delivery
package services
