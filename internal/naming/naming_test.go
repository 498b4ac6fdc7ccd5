package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accessor-generator/internal/options"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		want   string
	}{
		{name: "both", prefix: "set", suffix: "mut", want: "set_x_mut"},
		{name: "prefix only", prefix: "set", want: "set_x"},
		{name: "suffix only", suffix: "mut", want: "x_mut"},
		{name: "neither", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose("x", tt.prefix, tt.suffix))
		})
	}
}

func TestCompose_ClearedSlotsKeepFieldName(t *testing.T) {
	// A cleared prefix or suffix resolves to an empty string.
	for _, k := range options.Kinds {
		assert.Equal(t, "count", Compose("count", "", ""), k.String())
	}
}

func TestMethodIdent(t *testing.T) {
	tests := []struct {
		composed string
		vis      options.Visibility
		want     string
	}{
		{"x", options.Public, "X"},
		{"x", options.Private, "x"},
		{"set_x", options.Public, "SetX"},
		{"set_x", options.Private, "setX"},
		{"x_mut", options.Private, "xMut"},
		{"firstName", options.Public, "FirstName"},
		{"set_firstName", options.Public, "SetFirstName"},
		{"userID_mut", options.Public, "UserIDMut"},
		{"URLPath", options.Private, "urlPath"},
		{"ID", options.Private, "id"},
		{"", options.Public, ""},
	}

	for _, tt := range tests {
		t.Run(tt.composed+"/"+tt.vis.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MethodIdent(tt.composed, tt.vis))
		})
	}
}
