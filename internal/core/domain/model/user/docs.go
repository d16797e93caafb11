// Package user models platform accounts as far as order fulfillment needs them:
// identity (username), role, the contact profile snapshotted at checkout, the
// open/closed flag of restaurants and the feedback received by shippers.
//
// Authentication is not part of this package; a collaborator verifies
// credentials and hands the resulting Actor to the application layer.
package user
