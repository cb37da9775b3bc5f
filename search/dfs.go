// SPDX-License-Identifier: MIT

package search

// dfsFrame is one entry of the explicit depth-first stack.
// nbrs and next are filled in when the frame's node is entered.
type dfsFrame struct {
	node    string
	nbrs    []string
	next    int
	entered bool
}

// runDFS walks depth-first with an explicit frame stack instead of recursion,
// so graph depth is bounded by memory rather than the goroutine stack.
//
// The stack doubles as the path accumulator: when the top frame holds the end
// node, the frame nodes from bottom to top are the path start..end.
//
// Per top frame:
//   - not yet entered and equals end: record end as visited, return the stack as path.
//   - not yet entered and already visited: pop (backtrack) without revisiting.
//   - not yet entered: expand it and load its neighbors in declaration order.
//   - entered with neighbors left: push the next neighbor (first neighbor explored first).
//   - entered and exhausted: pop.
func runDFS(w *walk) error {
	stack := []dfsFrame{{node: w.start}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]

		if !f.entered {
			if f.node == w.end {
				if err := w.expand(f.node); err != nil {
					return err
				}
				path := make([]string, len(stack))
				for i := range stack {
					path[i] = stack[i].node
				}
				w.succeed(path)
				return nil
			}
			if w.visited[f.node] {
				stack = stack[:top]
				continue
			}
			if err := w.expand(f.node); err != nil {
				return err
			}
			nbrs, err := w.neighbors(f.node)
			if err != nil {
				return err
			}
			f.nbrs = nbrs
			f.entered = true
		}

		if f.next < len(f.nbrs) {
			next := f.nbrs[f.next]
			f.next++
			stack = append(stack, dfsFrame{node: next})
			continue
		}
		stack = stack[:top]
	}

	return nil
}
