package vocab_test

import (
	"testing"

	"github.com/hscells/opinion/vocab"
	"github.com/stretchr/testify/require"
)

func TestIndexAssignsFirstSeenOrder(t *testing.T) {
	x := vocab.NewIndex[string]()
	require.Equal(t, 0, x.Add("^gr"))
	require.Equal(t, 1, x.Add("gre"))
	require.Equal(t, 2, x.Add("rea"))
	require.Equal(t, 3, x.Len())
	require.Equal(t, []string{"^gr", "gre", "rea"}, x.Keys())
}

func TestIndexAddIsIdempotent(t *testing.T) {
	x := vocab.NewIndex[string]()
	x.Add("bat")
	x.Add("att")

	id := x.Add("bat")
	require.Equal(t, 0, id)
	require.Equal(t, 2, x.Len())

	got, ok := x.Lookup("att")
	require.True(t, ok)
	require.Equal(t, 1, got)

	_, ok = x.Lookup("zzz")
	require.False(t, ok)
}

func TestIndexIdsAreDense(t *testing.T) {
	x := vocab.NewIndex[int]()
	for _, k := range []int{5, 9, 5, 1, 9, 7} {
		x.Add(k)
	}
	for id := 0; id < x.Len(); id++ {
		got, ok := x.Lookup(x.Key(id))
		require.True(t, ok)
		require.Equal(t, id, got)
	}
	require.Equal(t, 4, x.Len())
}

func TestKeysReturnsCopy(t *testing.T) {
	x := vocab.NewIndex[string]()
	x.Add("a")
	k := x.Keys()
	k[0] = "b"
	require.Equal(t, "a", x.Key(0))
}
