// SPDX-License-Identifier: MIT

package search

// bfsEntry pairs a queued node with the arena index of the entry that
// enqueued it (-1 for the start). Following parent indices back to the root
// yields that entry's path-so-far without copying a path per entry.
type bfsEntry struct {
	node   string
	parent int
}

// runBFS walks breadth-first over a FIFO arena of entries.
//
// Entries are never removed; head advances through the arena, so the arena
// is both the queue and the storage for every path-so-far. A node may be
// queued several times before it is dequeued; only its first dequeue counts.
func runBFS(w *walk) error {
	arena := []bfsEntry{{node: w.start, parent: -1}}
	for head := 0; head < len(arena); head++ {
		item := arena[head]
		if w.visited[item.node] {
			continue
		}
		if err := w.expand(item.node); err != nil {
			return err
		}
		if item.node == w.end {
			w.succeed(arenaPath(arena, head))
			return nil
		}

		nbrs, err := w.neighbors(item.node)
		if err != nil {
			return err
		}
		for _, nb := range nbrs {
			if !w.visited[nb] {
				arena = append(arena, bfsEntry{node: nb, parent: head})
			}
		}
	}

	return nil
}

// arenaPath rebuilds the root→arena[i] path by following parent indices.
func arenaPath(arena []bfsEntry, i int) []string {
	var rev []string
	for ; i >= 0; i = arena[i].parent {
		rev = append(rev, arena[i].node)
	}

	return reversed(rev)
}
