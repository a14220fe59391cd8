package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"svw.info/sudoku-engine/internal/ports"
)

// searchParallel farms the root cell's candidate digits across workers.
// Each branch owns an independent state copy and runs the sequential
// search. Results are merged in ascending digit order, so the reported
// first and second solutions match what the sequential search would
// have produced.
func (e *Engine) searchParallel(ctx context.Context, s *state, sr *searcher, st *ports.Stats) {
	r, c, n := s.pickCell()
	if n < 0 {
		sr.record(s)
		return
	}
	if n == 0 {
		return
	}

	type branch struct {
		digit uint8
		sr    searcher
		st    ports.Stats
	}
	var branches []*branch
	for d := uint8(1); d <= 9; d++ {
		if s.cand[r][c]&(uint16(1)<<d) != 0 {
			branches = append(branches, &branch{digit: d, sr: searcher{budget: e.opts.NodeBudget}})
		}
	}

	gctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g := new(errgroup.Group)
	g.SetLimit(e.opts.Workers)

	// Once a completed prefix of branches holds two solutions the
	// remaining work cannot change the reported outcome, so cancel it.
	var mu sync.Mutex
	done := make([]bool, len(branches))
	complete := func(i int) {
		mu.Lock()
		defer mu.Unlock()
		done[i] = true
		total := 0
		for j := range branches {
			if !done[j] {
				return
			}
			total += len(branches[j].sr.solutions)
			if total >= 2 {
				cancel()
				return
			}
		}
	}

	for i, br := range branches {
		i, br := i, br
		g.Go(func() error {
			defer complete(i)
			br.st.Nodes++
			br.sr.nodes++
			child := *s
			if !child.assign(r, c, br.digit) {
				return nil
			}
			br.st.Assignments++
			switch e.propagate(&child, &br.st) {
			case propSolved:
				br.sr.record(&child)
			case propQuiescent:
				e.search(gctx, &child, &br.sr, &br.st)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, br := range branches {
		st.Nodes += br.st.Nodes
		st.Assignments += br.st.Assignments
		st.Passes += br.st.Passes
	}
	for _, br := range branches {
		for _, sol := range br.sr.solutions {
			if len(sr.solutions) < 2 {
				sr.solutions = append(sr.solutions, sol)
			}
		}
	}
	if len(sr.solutions) >= 2 {
		return
	}
	for _, br := range branches {
		if br.sr.aborted {
			sr.abort(br.sr.reason)
			return
		}
	}
}
