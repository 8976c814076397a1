package grid

// Components finds the 4-connected groups of occupied cells on layer l.
// Groups are listed in row-major order of their first cell; cells inside a
// group are in BFS discovery order.
//
// Time:   O(S·4) for S occupied cells.
// Memory: O(S) for seen flags and output.
func Components(r Reader, l Layer) [][]Point {
	seen := make(map[Point]bool)
	var comps [][]Point

	for _, s := range r.Segments(l) {
		if seen[s.At] {
			continue
		}
		// BFS to collect component
		queue := []Point{s.At}
		seen[s.At] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range Orthogonal {
				v := u.Add(d)
				if seen[v] || !Occupied(r, v, l) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Without returns the groups of cells left on layer l once the cells in
// exclude are ignored.
func Without(r Reader, l Layer, exclude map[Point]bool) [][]Point {
	rest := NewBoard()
	for _, s := range r.Segments(l) {
		if !exclude[s.At] {
			rest.layers[l][s.At] = s.Segment
		}
	}
	return Components(rest, l)
}
