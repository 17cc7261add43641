package dict

// CustomWordBoost is the count injected for custom words so they outrank
// any corpus word within their tier.
const CustomWordBoost = 1 << 30

type DictStore interface {
	Add(word string) error
	Remove(word string) error
	All() ([]string, error)
}
