package main

import (
	"time"

	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/poker"
)

// report is the presentation and JSON form of one evaluation.
type report struct {
	Name     string       `json:"name,omitempty"`
	RunID    string       `json:"run_id"`
	Mode     string       `json:"mode"`
	Oracle   string       `json:"oracle"`
	Trials   uint64       `json:"trials"`
	Workers  int          `json:"workers"`
	Seed     int64        `json:"seed,omitempty"`
	Duration Duration     `json:"duration"`
	Board    string       `json:"board,omitempty"`
	Dead     string       `json:"dead,omitempty"`
	Tie      float64      `json:"tie"`
	Hands    []handReport `json:"hands"`
}

type handReport struct {
	Cards      string             `json:"cards"`
	Class      string             `json:"class"`
	Win        float64            `json:"win"`
	WinLow     float64            `json:"win_low"`
	WinHigh    float64            `json:"win_high"`
	Categories map[string]float64 `json:"categories"`
}

// Duration marshals as a Go duration string.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func newReport(name string, in equity.Input, res *equity.Result) report {
	r := report{
		Name:     name,
		RunID:    res.RunID.String(),
		Mode:     res.Mode.String(),
		Oracle:   res.Oracle,
		Trials:   res.Trials,
		Workers:  res.Workers,
		Seed:     res.Seed,
		Duration: Duration(res.Duration),
		Board:    poker.FormatCards(in.Board),
		Dead:     poker.FormatCards(in.Dead),
		Tie:      res.TieProbability(),
	}

	wins := res.WinProbabilities()
	for i, hole := range in.Hands {
		lo, hi := res.ConfidenceInterval(i)
		h := handReport{
			Cards:      poker.FormatCards(hole[:]),
			Class:      poker.StartingHandNotation(hole) + " " + poker.ClassifyStartingHand(hole).String(),
			Win:        wins[i],
			WinLow:     lo,
			WinHigh:    hi,
			Categories: make(map[string]float64),
		}
		for cat := range poker.HandType(poker.NumHandTypes) {
			if p := res.CategoryProbability(i, cat); p > 0 {
				h.Categories[cat.String()] = p
			}
		}
		r.Hands = append(r.Hands, h)
	}
	return r
}
