package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accessor-generator/internal/goexpr"
)

func TestTypeCoder(t *testing.T) {
	c := typeCoder{imports: map[string]string{"big": "math/big", "pb": "example.com/api/v2"}}

	tests := []struct {
		src  string
		want string
	}{
		{"int", "int"},
		{"*Node", "*Node"},
		{"[]byte", "[]byte"},
		{"[4]int", "[4]int"},
		{"map[string][]*big.Int", "map[string][]*big.Int"},
		{"<-chan int", "<-chan int"},
		{"chan<- int", "chan<- int"},
		{"chan int", "chan int"},
		{"func(int, string) (bool, error)", "func(int, string) (bool, error)"},
		{"Pair[K, V]", "Pair[K, V]"},
		{"List[T]", "List[T]"},
		{"interface{}", "interface{}"},
		{"struct{}", "struct{}"},
		{"other.Thing", "other.Thing"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := c.node(goexpr.MustParse(tt.src).Node()).GoString()
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Contains(t, c.node(goexpr.MustParse("pb.Msg").Node()).GoString(), ".Msg")
}
