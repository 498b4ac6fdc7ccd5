package options

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is an accessor kind.
type Kind int

const (
	Get    Kind = iota // get
	GetMut             // get_mut
	Set                // set
)

// Kinds lists every accessor kind in emission order.
var Kinds = [...]Kind{Get, GetMut, Set}

// Naming is the built-in name decoration of an accessor kind.
type Naming struct {
	Prefix string // Empty means no prefix
	Suffix string // Empty means no suffix
}

var namings = [...]Naming{
	Get:    {},
	GetMut: {Suffix: "mut"},
	Set:    {Prefix: "set"},
}

// Naming returns the naming convention of k.
func (k Kind) Naming() Naming {
	if k < 0 || int(k) >= len(namings) {
		return Naming{}
	}

	return namings[k]
}

// ParseKind parses the directive spelling of a kind (get, get_mut, set).
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}
