package shapes

import (
	"fmt"
	big "math/big"
)

// Point is a point in the plane.
//
//accessor:gen get, set
//accessor:gen defaults(all(cp))
type Point struct {
	// X coordinate.
	X, Y int `json:"x" access:"set(prefix=with)"`
	// Label is shown in legends.
	//accessor:field get_mut
	Label string
	cache map[string]int `access:"skip"`
	_     int
	fmt.Stringer
}

//accessor:gen get
type Box[T fmt.Stringer, K comparable] struct {
	Value *T `access:"all(ptr_deref)"`
	Keys  []K
	Total *big.Int
}

// Plain has no directive.
type Plain struct{ A int }

// Counter is configured by the options file.
type Counter struct {
	hits int
	name string
}

//accessor:gen get
type Celsius float64
