package equity

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/internal/trials"
	"github.com/lox/pokerodds/poker"
)

// batch is a run of completions stored back to back, length cards each.
type batch struct {
	cards []poker.Card
	n     int
}

func (b *batch) completion(i, length int) []poker.Card {
	return b.cards[i*length : (i+1)*length]
}

type batchPool struct {
	pool sync.Pool
}

func newBatchPool(size, length int) *batchPool {
	return &batchPool{pool: sync.Pool{
		New: func() any {
			return &batch{cards: make([]poker.Card, 0, size*length)}
		},
	}}
}

func (p *batchPool) get() *batch {
	b := p.pool.Get().(*batch)
	b.cards, b.n = b.cards[:0], 0
	return b
}

func (p *batchPool) put(b *batch) { p.pool.Put(b) }

// workerCount is the number of workers worth starting: never more than the
// number of batches the source will fill.
func workerCount(want int, count uint64, batchSize int) int {
	batches := (count + uint64(batchSize) - 1) / uint64(batchSize)
	return int(max(min(uint64(want), batches), 1))
}

// runParallel plays every completion of src across workers goroutines. One
// producer batches the source onto a channel; each worker takes whole
// batches and records into its own shard. The shards are reduced once all
// workers have returned.
func runParallel(ctx context.Context, j *job, src trials.Source, workers, batchSize int) (*Tally, error) {
	length := src.Length()
	pool := newBatchPool(batchSize, length)
	tally := NewShardedTally(workers, len(j.hands))
	batches := make(chan *batch, workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		b := pool.get()
		for completion := range src.All() {
			b.cards = append(b.cards, completion...)
			b.n++
			if b.n < batchSize {
				continue
			}
			select {
			case batches <- b:
			case <-gctx.Done():
				return gctx.Err()
			}
			b = pool.get()
		}
		if b.n == 0 {
			return nil
		}
		select {
		case batches <- b:
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	for i := range workers {
		w := newWorker(i, j, tally.view(i))
		g.Go(func() (err error) {
			defer recoverOracle(&err)
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case b, ok := <-batches:
					if !ok {
						return nil
					}
					for k := range b.n {
						if err := w.play(b.completion(k, length)); err != nil {
							return fmt.Errorf("worker %d: %w", w.index, err)
						}
					}
					pool.put(b)
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		}
		return nil, err
	}

	t := tally.Reduce()
	if t.Trials() == 0 {
		return nil, ErrEmptyTrialSet
	}
	return t, nil
}
