package output

import (
	"fmt"
	"strings"

	"github.com/hscells/opinion/eval"
)

// TextSummaryFormatter outputs the fold counts and scores, followed by the
// mean score, in a plain format intended for reading in a terminal.
func TextSummaryFormatter(summary eval.Summary) (string, error) {
	var s strings.Builder
	for _, f := range summary.Folds {
		if f.Failed() {
			fmt.Fprintf(&s, "Fold %d failed: %s\n", f.Fold, f.Err)
			continue
		}
		fmt.Fprintln(&s, "Fold calculated:")
		fmt.Fprintln(&s, f.Correct, f.Actual, f.Predicted)
		fmt.Fprintln(&s, f.Precision, f.Recall, f.Score)
	}
	fmt.Fprintln(&s, "Total score is:", summary.Mean)
	return s.String(), nil
}
