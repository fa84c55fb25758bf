// Package config loads the options of a cross-validation experiment.
package config

import (
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Options configure how a classifier is built and evaluated.
type Options struct {
	// Folds is the number of cross-validation partitions.
	Folds int
	// Shuffle shuffles documents before partitioning.
	Shuffle bool
	// Seed seeds the shuffle; nil seeds it from the clock.
	Seed *int64
	// NGram is the length of the character n-grams.
	NGram int
	// Alpha is the Naive Bayes smoothing parameter.
	Alpha float64
	// Workers limits how many label columns are fitted at once; 0 uses every CPU.
	Workers int
	// Cache is a directory for storing completed folds.
	Cache string
	// Format is the name of the output format.
	Format string
}

// Default returns the options used when nothing else is specified.
func Default() Options {
	return Options{
		Folds:   10,
		Shuffle: true,
		NGram:   3,
		Alpha:   1,
		Format:  "text",
	}
}

// Load reads a properties file over the defaults. Recognised keys are
// n_folds, shuffle, seed, ngram, alpha, workers, cache and format.
func Load(path string) (Options, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Options{}, errors.Wrapf(err, "loading %s", path)
	}
	return FromProperties(p)
}

// FromProperties reads options from already loaded properties.
func FromProperties(p *properties.Properties) (Options, error) {
	o := Default()
	o.Folds = p.GetInt("n_folds", o.Folds)
	o.Shuffle = p.GetBool("shuffle", o.Shuffle)
	o.NGram = p.GetInt("ngram", o.NGram)
	o.Alpha = p.GetFloat64("alpha", o.Alpha)
	o.Workers = p.GetInt("workers", o.Workers)
	o.Cache = p.GetString("cache", o.Cache)
	o.Format = p.GetString("format", o.Format)
	if _, ok := p.Get("seed"); ok {
		seed := p.GetInt64("seed", 0)
		o.Seed = &seed
	}
	return o, o.Validate()
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if o.Folds < 2 {
		return errors.Errorf("n_folds must be at least 2, got %d", o.Folds)
	}
	if o.NGram < 1 {
		return errors.Errorf("ngram must be positive, got %d", o.NGram)
	}
	if o.Alpha < 0 {
		return errors.Errorf("alpha must not be negative, got %v", o.Alpha)
	}
	if o.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", o.Workers)
	}
	return nil
}
