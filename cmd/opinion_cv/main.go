// Command opinion_cv cross-validates a character n-gram Naive Bayes opinion classifier.
package main

import (
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"
	"github.com/hscells/opinion/cmd"
	"github.com/hscells/opinion/config"
	"github.com/hscells/opinion/corpus"
	"github.com/hscells/opinion/eval"
	"github.com/hscells/opinion/output"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	name    = "opinion_cv"
	version = "17.Oct.2026"
)

type args struct {
	Corpus        string   `arg:"positional,required" help:"JSON file of labelled reviews"`
	Config        string   `arg:"-c" help:"properties file of experiment options"`
	Folds         *int     `arg:"-k" help:"number of folds (default 10)"`
	NoShuffle     bool     `help:"do not shuffle documents before splitting them into folds"`
	Seed          *int64   `arg:"-s" help:"seed for shuffling (default is the clock)"`
	NGram         *int     `arg:"-n" help:"length of character n-grams (default 3)"`
	Alpha         *float64 `help:"Naive Bayes smoothing (default 1)"`
	Workers       *int     `help:"label columns fitted at once (default every CPU)"`
	Cache         string   `help:"directory to store completed folds in"`
	Format        string   `arg:"-f" help:"output format (text/json/csv)"`
	Stem          bool     `help:"stem tokens"`
	Stopwords     bool     `help:"remove stop words"`
	Transliterate bool     `help:"transliterate text to ASCII"`
	Progress      bool     `help:"display a progress bar"`
	Debug         bool     `help:"verbose logging"`
}

func (args) Version() string {
	return fmt.Sprintf("%s %s", name, version)
}

func (args) Description() string {
	return `Cross-validate a character n-gram Naive Bayes opinion classifier.`
}

// options reads the config file, if any, and applies the flags over it.
func (a args) options() (config.Options, error) {
	o := config.Default()
	if len(a.Config) > 0 {
		var err error
		o, err = config.Load(a.Config)
		if err != nil {
			return o, err
		}
	}
	if a.Folds != nil {
		o.Folds = *a.Folds
	}
	if a.NoShuffle {
		o.Shuffle = false
	}
	if a.Seed != nil {
		o.Seed = a.Seed
	}
	if a.NGram != nil {
		o.NGram = *a.NGram
	}
	if a.Alpha != nil {
		o.Alpha = *a.Alpha
	}
	if a.Workers != nil {
		o.Workers = *a.Workers
	}
	if len(a.Cache) > 0 {
		o.Cache = a.Cache
	}
	if len(a.Format) > 0 {
		o.Format = a.Format
	}
	return o, o.Validate()
}

func main() {
	var args args
	arg.MustParse(&args)

	if args.Debug {
		log.SetLevel(log.DebugLevel)
	}
	logger := log.WithField("run", uuid.New().String())

	o, err := args.options()
	if err != nil {
		cmd.Fatal(err)
	}
	formatter, ok := output.Formatters[o.Format]
	if !ok {
		cmd.Fatal(errors.Errorf("unknown output format %q", o.Format))
	}

	c, err := corpus.LoadFile(args.Corpus)
	if err != nil {
		cmd.Fatal(err)
	}
	logger.WithFields(log.Fields{"documents": c.Len(), "folds": o.Folds}).Info("loaded corpus")

	a, err := cmd.Analyser(args.Stem, args.Stopwords, args.Transliterate, c.Len())
	if err != nil {
		cmd.Fatal(err)
	}

	cv := eval.CrossValidation{
		Folds:    o.Folds,
		Shuffle:  o.Shuffle,
		Seed:     o.Seed,
		Progress: args.Progress,
		Key:      cmd.ModelKey(o, args.Stem, args.Stopwords, args.Transliterate),
	}
	if len(o.Cache) > 0 {
		cv.Cache = eval.NewDirFoldCache(o.Cache)
	}

	summary, err := cv.Run(c, cmd.SolutionFactory(o, a, args.Debug))
	if err != nil {
		cmd.Fatal(err)
	}
	logger.WithFields(log.Fields{
		"mean":   summary.Mean,
		"stddev": summary.StdDev,
		"failed": summary.Failed,
		"seed":   summary.Seed,
	}).Info("completed cross-validation")

	s, err := formatter(summary)
	if err != nil {
		cmd.Fatal(err)
	}
	fmt.Print(s)
}
