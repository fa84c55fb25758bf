package config_test

import (
	"testing"

	"github.com/hscells/opinion/config"
	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	o := config.Default()
	require.NoError(t, o.Validate())
	assert.Equal(t, 10, o.Folds)
	assert.True(t, o.Shuffle)
	assert.Nil(t, o.Seed)
	assert.Equal(t, 3, o.NGram)
}

func TestFromProperties(t *testing.T) {
	p := properties.MustLoadString("n_folds = 5\nshuffle = false\nseed = 42\nalpha = 0.5\nformat = csv\n")
	o, err := config.FromProperties(p)
	require.NoError(t, err)
	assert.Equal(t, 5, o.Folds)
	assert.False(t, o.Shuffle)
	require.NotNil(t, o.Seed)
	assert.Equal(t, int64(42), *o.Seed)
	assert.Equal(t, 0.5, o.Alpha)
	assert.Equal(t, "csv", o.Format)
	assert.Equal(t, 3, o.NGram)
}

func TestLoad(t *testing.T) {
	o, err := config.Load("testdata/experiment.properties")
	require.NoError(t, err)
	assert.Equal(t, 4, o.Folds)
	assert.Equal(t, 2, o.Workers)
	assert.Nil(t, o.Seed)

	_, err = config.Load("testdata/missing.properties")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	p := properties.MustLoadString("n_folds = 1\n")
	_, err := config.FromProperties(p)
	assert.Error(t, err)

	o := config.Default()
	o.NGram = 0
	assert.Error(t, o.Validate())
}
