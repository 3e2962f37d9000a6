package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{code: "USD", want: "$"},
		{code: "EUR", want: "€"},
		{code: "GBP", want: "£"},
		{code: "INR", want: "₹"},
		{code: "AUD", want: "A$"},
		{code: " ZAR ", want: "R"},
		{code: "XXX", want: FallbackSymbol},
		{code: "", want: FallbackSymbol},
		{code: "usd", want: FallbackSymbol},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, Symbol(tc.code))
		})
	}
}

func TestAllIsACopy(t *testing.T) {
	list := All()
	require.Len(t, list, 10)
	assert.Equal(t, "ZAR", list[0].Code)

	list[0].Symbol = "changed"
	assert.Equal(t, "R", Symbol("ZAR"))
}

func TestDefaultIsKnown(t *testing.T) {
	assert.True(t, Known(DefaultCode))

	c, ok := Lookup(DefaultCode)
	require.True(t, ok)
	assert.Equal(t, "USD ($) - US Dollar", c.Label())
}
