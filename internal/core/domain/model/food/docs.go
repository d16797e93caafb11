// Package food implements the catalog side of the domain: FoodItem, the
// aggregate a restaurant offers, with its variations, stock flag and the
// ratings customers submit after delivery.
//
// Key business rules:
//   - Prices are exact Money amounts; unit price = base price + variation delta
//   - Only in-stock items of open restaurants may be added to a cart
//   - The average rating always equals the mean of all ratings received
package food
