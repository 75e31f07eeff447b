// Package kernel provides core domain primitives shared by the order lifecycle.
//
// The package includes:
//   - Date: a calendar day used for delivery dates and every cutoff/dispatch comparison
//   - TimeOfDay: the requested "HH:MM" delivery time
//   - Weekday: recurrence days of standing orders
//   - BusinessClock: the wall clock in the bakery's operating timezone
//
// These primitives are immutable values and safe for concurrent use.
package kernel
