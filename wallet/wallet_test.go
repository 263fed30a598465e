package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	require.Equal(t, int64(0), Zero().Value())
}

func TestNewClampsNegative(t *testing.T) {
	require.Equal(t, int64(0), New(-5).Value())
}

func TestSplit(t *testing.T) {
	b := New(100)

	out, err := b.Split(30)
	require.NoError(t, err)
	require.Equal(t, int64(30), out.Value())
	require.Equal(t, int64(70), b.Value())

	// Draining the remainder leaves an empty balance.
	rest, err := b.Split(70)
	require.NoError(t, err)
	require.Equal(t, int64(70), rest.Value())
	require.Equal(t, int64(0), b.Value())
}

func TestSplitInsufficient(t *testing.T) {
	b := New(10)
	_, err := b.Split(11)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	require.Equal(t, int64(10), b.Value())
}

func TestSplitNegative(t *testing.T) {
	b := New(10)
	_, err := b.Split(-1)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	require.Equal(t, int64(10), b.Value())
}

func TestJoinDrainsSource(t *testing.T) {
	a := New(40)
	b := New(60)

	a.Join(b)
	require.Equal(t, int64(100), a.Value())
	require.Equal(t, int64(0), b.Value())

	// Joining the drained balance again moves nothing.
	a.Join(b)
	require.Equal(t, int64(100), a.Value())
}

func TestConservationAcrossMoves(t *testing.T) {
	pot := New(1000)
	total := func(balances ...*Balance) (sum int64) {
		for _, b := range balances {
			sum += b.Value()
		}
		return
	}

	x, err := pot.Split(250)
	require.NoError(t, err)
	y, err := x.Split(50)
	require.NoError(t, err)
	pot.Join(y)

	require.Equal(t, int64(1000), total(pot, x, y))
}
