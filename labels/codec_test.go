package labels_test

import (
	"testing"

	"github.com/hscells/opinion/labels"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pos = labels.NewLabel("battery", "positive")
	neg = labels.NewLabel("battery", "negative")
	scr = labels.NewLabel("screen", "neutral")
)

func TestEncode(t *testing.T) {
	c := labels.NewCodec()
	sets := [][]labels.Label{{pos, neg}, {scr}}
	c.Register(sets)
	require.Equal(t, []labels.Label{pos, neg, scr}, c.Labels())

	m, err := c.Encode(sets)
	require.NoError(t, err)
	assert.Equal(t, []labels.Indicator{{true, true, false}, {false, false, true}}, m)
}

func TestRoundTrip(t *testing.T) {
	c := labels.NewCodec()
	c.Register([][]labels.Label{{scr}, {pos, neg}})

	for _, set := range [][]labels.Label{{}, {pos}, {neg, scr}, {scr, pos, neg}} {
		ind, err := c.EncodeOne(set)
		require.NoError(t, err)
		got, err := c.Decode(ind)
		require.NoError(t, err)
		assert.ElementsMatch(t, set, got)
	}
}

func TestEncodeUnknownLabel(t *testing.T) {
	c := labels.NewCodec()
	c.Register([][]labels.Label{{pos}})

	_, err := c.EncodeOne([]labels.Label{neg})
	var unknown labels.UnknownLabelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, neg, unknown.Label)
	assert.Equal(t, 1, c.Len())
}

func TestDecodeLengthMismatch(t *testing.T) {
	c := labels.NewCodec()
	c.Register([][]labels.Label{{pos, neg}})

	_, err := c.Decode(labels.Indicator{true})
	var decode labels.DecodeError
	require.True(t, errors.As(err, &decode))
	assert.Equal(t, 1, decode.Length)
	assert.Equal(t, 2, decode.Universe)
}

func TestRegisterIsAppendOnly(t *testing.T) {
	c := labels.NewCodec()
	c.Register([][]labels.Label{{pos}})
	c.Register([][]labels.Label{{neg, pos}})
	assert.Equal(t, []labels.Label{pos, neg}, c.Labels())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []labels.Label{pos, neg}, labels.Unique([]labels.Label{pos, neg, pos}))
	assert.Equal(t, 2, labels.Indicator{true, false, true}.Count())
}
