package equity

import (
	"context"
	"fmt"

	"github.com/lox/pokerodds/internal/trials"
)

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 4096

// runSequential plays every completion of src on the calling goroutine.
func runSequential(ctx context.Context, j *job, src trials.Source) (t *Tally, err error) {
	defer recoverOracle(&err)

	t = NewTally(len(j.hands))
	w := newWorker(0, j, t)

	n := 0
	for completion := range src.All() {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run cancelled: %w", err)
			}
		}
		n++
		if err := w.play(completion); err != nil {
			return nil, err
		}
	}

	if t.Trials() == 0 {
		return nil, ErrEmptyTrialSet
	}
	return t, nil
}
