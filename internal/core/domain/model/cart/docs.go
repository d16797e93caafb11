// Package cart holds the Cart aggregate: a customer's pending (food, variation)
// selections. Prices are not stored here; totals are computed on demand from
// the catalog through a PriceFunc.
package cart
