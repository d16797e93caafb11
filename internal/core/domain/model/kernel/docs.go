// Package kernel provides the shared value objects of the ordering domain:
//   - UUID: identifiers for foods, orders and complaints
//   - Money: exact currency amounts in minor units
//   - ShortID: collision-free display prefixes for order ids
package kernel
