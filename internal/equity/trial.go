package equity

import (
	"fmt"

	"github.com/lox/pokerodds/internal/oracle"
	"github.com/lox/pokerodds/poker"
)

// job is the immutable input shared by every worker of one run.
type job struct {
	oracle oracle.Oracle
	hands  [][2]poker.Card
	board  []poker.Card // given board, 0-5 cards
}

// worker plays trials for one shard. Its index is fixed at construction and
// all of its scratch space is private.
type worker struct {
	index   int
	job     *job
	out     recorder
	board   []poker.Card
	results []oracle.Result
}

func newWorker(index int, j *job, out recorder) *worker {
	board := make([]poker.Card, len(j.board), 5)
	copy(board, j.board)
	return &worker{
		index:   index,
		job:     j,
		out:     out,
		board:   board,
		results: make([]oracle.Result, len(j.hands)),
	}
}

// play runs one trial: the given board plus completion is scored for every
// player and the outcome recorded.
func (w *worker) play(completion []poker.Card) error {
	board := append(w.board[:len(w.job.board)], completion...)
	o := w.job.oracle

	pre, err := o.Preprocess(board)
	if err != nil {
		return fmt.Errorf("%w: preprocess %s: %w", ErrOracleFailure, poker.FormatCards(board), err)
	}
	for i, hole := range w.job.hands {
		r, err := o.Detect(hole, board, pre)
		if err != nil {
			return fmt.Errorf("%w: detect player %d: %w", ErrOracleFailure, i, err)
		}
		if r.Category >= poker.NumHandTypes {
			return fmt.Errorf("%w: player %d has unknown category %d", ErrOracleFailure, i, r.Category)
		}
		w.results[i] = r
	}
	winner, err := o.Compare(w.results)
	if err != nil {
		return fmt.Errorf("%w: compare: %w", ErrOracleFailure, err)
	}
	if winner != oracle.Tie && (winner < 0 || int(winner) >= len(w.job.hands)) {
		return fmt.Errorf("%w: winner %d out of range", ErrOracleFailure, int(winner))
	}

	w.out.record(winner, w.results)
	return nil
}

// recoverOracle turns a panic inside an oracle call into ErrOracleFailure.
func recoverOracle(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: panic: %v", ErrOracleFailure, r)
	}
}
