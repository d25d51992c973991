package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOptions_Fees(t *testing.T) {
	want := map[string]int64{
		"pickup":         0,
		"lagos-island":   5000,
		"lagos-mainland": 3500,
		"inter-state":    4500,
		"western-states": 4000,
	}

	opts := Options()
	require.Len(t, opts, len(want))

	for _, opt := range opts {
		fee, ok := want[opt.ID]
		require.True(t, ok, "unexpected option %s", opt.ID)
		require.True(t, opt.Fee.Equal(decimal.NewFromInt(fee)), "fee for %s", opt.ID)
		require.NotEmpty(t, opt.Name)
		require.NotEmpty(t, opt.DeliveryTime)
	}
}

func TestFee_KnownAndUnknown(t *testing.T) {
	fee, ok := Fee("lagos-mainland")
	require.True(t, ok)
	require.True(t, fee.Equal(decimal.NewFromInt(3500)))

	fee, ok = Fee("pickup")
	require.True(t, ok)
	require.True(t, fee.IsZero())

	_, ok = Fee("moon-base")
	require.False(t, ok)
}

func TestOptions_ReturnsCopy(t *testing.T) {
	opts := Options()
	opts[0].Name = "mutated"
	require.NotEqual(t, "mutated", Options()[0].Name)
}
