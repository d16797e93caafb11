// Package ports defines the contracts between the food ordering core and its
// adapters: aggregate repositories with per-aggregate critical sections, the
// event publisher, the payment gateway, the snapshot store used at process
// boundaries and the activity log.
package ports
