package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hscells/opinion/eval"
)

// CsvSummaryFormatter outputs one row per fold in CSV format.
func CsvSummaryFormatter(summary eval.Summary) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	err := w.Write([]string{"Fold", "Train", "Test", "Correct", "Actual", "Predicted", "Precision", "Recall", summary.Measure, "Error"})
	if err != nil {
		return "", err
	}
	for _, f := range summary.Folds {
		var reason string
		if f.Err != nil {
			reason = f.Err.Error()
		}
		err := w.Write([]string{
			strconv.Itoa(f.Fold),
			strconv.Itoa(f.Train),
			strconv.Itoa(f.Test),
			strconv.Itoa(f.Correct),
			strconv.Itoa(f.Actual),
			strconv.Itoa(f.Predicted),
			strconv.FormatFloat(f.Precision, 'f', -1, 64),
			strconv.FormatFloat(f.Recall, 'f', -1, 64),
			strconv.FormatFloat(f.Score, 'f', -1, 64),
			reason,
		})
		if err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
