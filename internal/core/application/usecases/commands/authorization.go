package commands

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// authorizeCatalog lets a restaurant edit its own menu and catalog managers edit any.
func authorizeCatalog(actor user.Actor, restaurant string) error {
	if actor.Role.CanManageCatalog() {
		return nil
	}
	if actor.Role == user.Restaurant && actor.Username == restaurant {
		return nil
	}
	return errs.NewUnauthorizedError(actor.String(), fmt.Sprintf("manage the menu of %s", restaurant))
}

func requireCustomer(actor user.Actor) error {
	if actor.Role != user.Customer {
		return errs.ErrNotACustomer
	}
	return nil
}

func requireSupport(actor user.Actor, action string) error {
	if !actor.Role.CanResolveComplaints() {
		return errs.NewUnauthorizedError(actor.String(), action)
	}
	return nil
}
