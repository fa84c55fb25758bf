// Command opinion_predict trains an opinion classifier on a corpus and labels
// each line of standard input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hscells/opinion/cmd"
	"github.com/hscells/opinion/config"
	"github.com/hscells/opinion/corpus"
	log "github.com/sirupsen/logrus"
)

type args struct {
	Corpus        string  `arg:"positional,required" help:"JSON file of labelled reviews to train on"`
	NGram         int     `arg:"-n" help:"length of character n-grams"`
	Alpha         float64 `help:"Naive Bayes smoothing"`
	Workers       int     `help:"label columns fitted at once (default every CPU)"`
	Stem          bool    `help:"stem tokens"`
	Stopwords     bool    `help:"remove stop words"`
	Transliterate bool    `help:"transliterate text to ASCII"`
	Debug         bool    `help:"verbose logging"`
}

func (args) Version() string {
	return "opinion_predict 17.Oct.2026"
}

func (args) Description() string {
	return `Train an opinion classifier and print the opinions of each line read from stdin.`
}

func main() {
	args := args{NGram: 3, Alpha: 1}
	arg.MustParse(&args)

	if args.Debug {
		log.SetLevel(log.DebugLevel)
	}

	o := config.Default()
	o.NGram = args.NGram
	o.Alpha = args.Alpha
	o.Workers = args.Workers
	if err := o.Validate(); err != nil {
		cmd.Fatal(err)
	}

	c, err := corpus.LoadFile(args.Corpus)
	if err != nil {
		cmd.Fatal(err)
	}

	a, err := cmd.Analyser(args.Stem, args.Stopwords, args.Transliterate, 0)
	if err != nil {
		cmd.Fatal(err)
	}
	s := cmd.NewSolution(o, a, args.Debug)
	if err := s.Train(c.Texts, c.Labels); err != nil {
		cmd.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		predicted, err := s.Predict(text)
		if err != nil {
			cmd.Fatal(err)
		}
		l := make([]string, len(predicted))
		for i, p := range predicted {
			l[i] = string(p)
		}
		fmt.Fprintf(w, "%s\t%s\n", text, strings.Join(l, ","))
	}
	if err := scanner.Err(); err != nil {
		cmd.Fatal(err)
	}
}
