package cli

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. Install it with
// COMP_INSTALL=1 portfolio.
func Completion() *complete.Command {
	jsonFiles := predict.Files("*.json")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"holdings": {
				Flags: map[string]complete.Predictor{
					"transactions": jsonFiles,
					"quotes":       jsonFiles,
					"base":         predict.Something,
					"json":         predict.Nothing,
				},
			},
			"convert": {
				Flags: map[string]complete.Predictor{
					"quotes": jsonFiles,
					"from":   predict.Something,
					"to":     predict.Something,
					"amount": predict.Something,
					"base":   predict.Something,
				},
			},
			"help":  {},
			"flags": {},
		},
	}
}
