package kernel

import "strings"

// ShortIDLength is the display length of an order id ("[1a2b3c] ...").
const ShortIDLength = 6

// ShortID returns the shortest prefix of id's canonical form, at least
// ShortIDLength characters long, that no other id in live shares. The result
// is stable for a given live set and always maps back to exactly one id.
func ShortID(id UUID, live []UUID) string {
	full := id.String()
	for n := ShortIDLength; n < len(full); n++ {
		prefix := full[:n]
		if !prefixTaken(prefix, id, live) {
			return prefix
		}
	}
	return full
}

func prefixTaken(prefix string, self UUID, live []UUID) bool {
	for _, other := range live {
		if other.IsEqual(self) {
			continue
		}
		if strings.HasPrefix(other.String(), prefix) {
			return true
		}
	}
	return false
}
