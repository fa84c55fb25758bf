// Package output provides different formats of output for experiments.
package output

import (
	"encoding/json"

	"github.com/hscells/opinion/eval"
)

// SummaryFormatter is used to output the results of a cross-validation run.
type SummaryFormatter func(summary eval.Summary) (string, error)

// JsonSummaryFormatter outputs the summary in a JSON format.
func JsonSummaryFormatter(summary eval.Summary) (string, error) {
	v, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Formatters are the summary formatters addressable by name.
var Formatters = map[string]SummaryFormatter{
	"json": JsonSummaryFormatter,
	"csv":  CsvSummaryFormatter,
	"text": TextSummaryFormatter,
}
