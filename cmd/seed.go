package cmd

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

type seedUser struct {
	username    string
	role        user.Role
	address     string
	phone       string
	displayName string
}

var demoUsers = []seedUser{
	{"admin", user.Admin, "", "", ""},
	{"owner", user.Owner, "", "", ""},
	{"shipper", user.Shipper, "", "0900000001", ""},
	{"administrator", user.Administrator, "", "", ""},
	{"support", user.CustomerService, "", "", ""},
	{"customer1", user.Customer, "12 Le Loi, District 1", "0900000002", ""},
	{"shipper1", user.Shipper, "", "0900000003", ""},
	{"pizzahub", user.Restaurant, "48 Nguyen Hue, District 1", "0900000004", "Pizza Hub"},
}

type seedFood struct {
	name        string
	description string
	price       string
	category    string
}

var demoMenu = []seedFood{
	{"Classic Burger", "Beef patty, lettuce, tomato", "6.99", "Burgers"},
	{"Cheese Burger", "Double cheese", "8.49", "Burgers"},
	{"Margherita Pizza", "Fresh basil & mozzarella", "10.99", "Pizza"},
	{"Pepperoni Pizza", "Classic pepperoni", "12.50", "Pizza"},
	{"Coke", "330ml can", "1.50", "Drinks"},
	{"Chocolate Cake", "Slice of heaven", "4.75", "Dessert"},
}

// Seed fills empty repositories with the demo accounts, the Pizza Hub menu
// and one placed order. Everything goes through the command handlers and
// publishes the usual events.
func Seed(ctx context.Context, deps commands.Deps) error {
	register := commands.NewRegisterUserCommandHandler(deps)
	for _, u := range demoUsers {
		cmd, err := commands.NewRegisterUserCommand(u.username, u.role, u.address, u.phone, u.displayName)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		if _, err = register.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	restaurant := user.Actor{Username: "pizzahub", Role: user.Restaurant}
	addFood := commands.NewAddFoodItemCommandHandler(deps)
	menu := make(map[string]kernel.UUID, len(demoMenu))
	for _, f := range demoMenu {
		price, err := kernel.ParseMoney(f.price)
		if err != nil {
			return fmt.Errorf("seed food %s: %w", f.name, err)
		}
		cmd, err := commands.NewAddFoodItemCommand(restaurant, f.name, f.description, price, f.category, "", nil)
		if err != nil {
			return fmt.Errorf("seed food %s: %w", f.name, err)
		}
		item, err := addFood.Handle(ctx, cmd)
		if err != nil {
			return fmt.Errorf("seed food %s: %w", f.name, err)
		}
		menu[f.name] = item.ID()
	}

	customer := user.Actor{Username: "customer1", Role: user.Customer}
	addToCart := commands.NewAddToCartCommandHandler(deps)
	for _, line := range []struct {
		food     string
		quantity int
	}{
		{"Classic Burger", 1},
		{"Coke", 2},
	} {
		cmd, err := commands.NewAddToCartCommand(customer, menu[line.food], "", line.quantity)
		if err != nil {
			return fmt.Errorf("seed cart: %w", err)
		}
		if err = addToCart.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed cart: %w", err)
		}
	}

	checkout, err := commands.NewCheckoutCommand(customer, "", order.CashOnDelivery)
	if err != nil {
		return fmt.Errorf("seed order: %w", err)
	}
	if _, err = commands.NewCheckoutCommandHandler(deps).Handle(ctx, checkout); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}
	return nil
}
