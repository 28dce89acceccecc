package cmd

import (
	"github.com/etnz/finboard/date"
	"github.com/etnz/finboard/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the fbd command line.
//
// A main package calls Completion().Complete("fbd") before parsing flags:
// it only acts when the shell requests a completion.
func Completion() *complete.Command {
	windows := make(predict.Set, 0, len(date.Windows()))
	for _, w := range date.Windows() {
		windows = append(windows, string(w))
	}
	dates := predict.Set{"0d", "-1d", "-1w", "-1m", "-1q", "-1y"}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"chart": {
				Flags: map[string]complete.Predictor{
					"w":      windows,
					"d":      dates,
					"f":      predict.Files("*.json"),
					"path":   predict.Something,
					"symbol": predict.Something,
					"json":   predict.Nothing,
				},
			},
			"dividends": {
				Flags: map[string]complete.Predictor{
					"y":    predict.Something,
					"n":    predict.Something,
					"f":    predict.Files("*.json"),
					"path": predict.Something,
					"json": predict.Nothing,
				},
			},
			"windows": {
				Flags: map[string]complete.Predictor{"d": dates},
			},
			"topic": {
				Args: predict.Set(append([]string{"*"}, topics...)),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"raw":    predict.Nothing,
			"v":      predict.Nothing,
		},
	}
}
