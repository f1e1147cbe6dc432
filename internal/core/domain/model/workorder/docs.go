// Package workorder provides the work order aggregate and its status workflow.
//
// The package includes:
//   - WorkOrder: the aggregate root holding the dig site, schedule, status and
//     conflict reason
//   - Status: the closed set of lifecycle states with their wire literals
//   - TransitionPolicy: the seam deciding which status changes are legal, with
//     a permissive default and a strict approval workflow table
//
// Key business rules:
//   - A new order is either PENDING_APPROVAL with reason "None" or
//     CONFLICT_DETECTED with the detector's reason; nothing else
//   - Storage assigns the id exactly once
//   - Status changes after creation go through the configured policy
package workorder
