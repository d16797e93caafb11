// Package memory implements the repository ports on top of process memory.
//
// Every collection uses a map-level RWMutex for membership and one mutex per
// aggregate for mutation. Update callbacks run on a private copy that replaces
// the stored aggregate only when the callback succeeds; readers always get
// clones. Orders, catalog, users, carts and complaints each have their own
// store, so no lock is shared across aggregate kinds.
package memory
