// SPDX-License-Identifier: MIT

package search

import "fmt"

// runGreedy expands the queued node with the lowest heuristic, ignoring
// accumulated cost. A node's predecessor is the first expanded node that
// queued it and is never reassigned.
func runGreedy(w *walk) error {
	h, err := w.heuristic(w.start)
	if err != nil {
		return err
	}
	pred := map[string]string{}
	fr := newFrontier()
	fr.push(w.start, h, 0)

	for fr.Len() > 0 {
		cur := fr.pop().node
		if w.visited[cur] {
			continue
		}
		if err = w.expand(cur); err != nil {
			return err
		}
		if cur == w.end {
			w.succeed(reconstruct(pred, w.start, w.end))
			return nil
		}

		nbrs, err := w.neighbors(cur)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if w.visited[nb] {
				continue
			}
			hn, err := w.heuristic(nb)
			if err != nil {
				return err
			}
			if _, ok := pred[nb]; !ok && nb != w.start {
				pred[nb] = cur
			}
			fr.push(nb, hn, 0)
		}
	}

	return nil
}

// runAStar orders the frontier by g + h.
func runAStar(w *walk) error { return costOrdered(w, w.heuristic) }

// runDijkstra orders the frontier by g alone.
func runDijkstra(w *walk) error {
	return costOrdered(w, func(string) (float64, error) { return 0, nil })
}

// costOrdered is the shared A*/Dijkstra loop with priority g + h(node).
//
// best holds the lowest g seen per node. A popped entry whose g is worse
// than best is stale and skipped. A settled node may still be reached with a
// lower g when the heuristic is admissible but inconsistent; it is then
// reopened: its neighbors are relaxed again, but it is not expanded a second
// time, so VisitOrder keeps each node once.
func costOrdered(w *walk, h func(string) (float64, error)) error {
	h0, err := h(w.start)
	if err != nil {
		return err
	}
	best := map[string]float64{w.start: 0}
	pred := map[string]string{}
	fr := newFrontier()
	fr.push(w.start, h0, 0)

	for fr.Len() > 0 {
		item := fr.pop()
		cur := item.node
		if item.g > best[cur] {
			continue
		}
		if !w.visited[cur] {
			if err = w.expand(cur); err != nil {
				return err
			}
			if cur == w.end {
				w.succeed(reconstruct(pred, w.start, w.end))
				return nil
			}
		}

		nbrs, err := w.neighbors(cur)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			c, err := w.graph.Cost(cur, nb)
			if err != nil {
				return fmt.Errorf("search: cost %q→%q: %w", cur, nb, err)
			}
			g2 := item.g + c
			if old, seen := best[nb]; seen && g2 >= old {
				continue
			}
			hn, err := h(nb)
			if err != nil {
				return err
			}
			best[nb] = g2
			pred[nb] = cur
			fr.push(nb, g2+hn, g2)
		}
	}

	return nil
}
