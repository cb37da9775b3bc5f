// SPDX-License-Identifier: MIT

package search

// reconstruct walks pred back from end until it reaches start and returns
// the path start..end. pred must hold an entry for every node on the path
// except start.
func reconstruct(pred map[string]string, start, end string) []string {
	rev := []string{end}
	for cur := end; cur != start; {
		cur = pred[cur]
		rev = append(rev, cur)
	}

	return reversed(rev)
}

// reversed reverses s in place and returns it.
func reversed(s []string) []string {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
