package layout

import "math"

// triangle holds three indices into the point slice it was built from.
type triangle struct {
	a, b, c int
}

// delaunay triangulates the points with the Bowyer-Watson algorithm.
// The result is deterministic for a given input order: points are
// inserted in slice order and triangle bookkeeping never iterates a
// map. Fewer than three points, or a fully collinear set, yields no
// triangles; callers must handle an empty result.
func delaunay(points []Point) []triangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	px := make([]float64, n+3)
	py := make([]float64, n+3)
	for i, p := range points {
		px[i] = float64(p.X)
		py[i] = float64(p.Y)
	}

	// Super-triangle large enough to contain every point.
	minX, minY := px[0], py[0]
	maxX, maxY := px[0], py[0]
	for i := 1; i < n; i++ {
		minX = math.Min(minX, px[i])
		minY = math.Min(minY, py[i])
		maxX = math.Max(maxX, px[i])
		maxY = math.Max(maxY, py[i])
	}
	dmax := math.Max(maxX-minX, maxY-minY)
	if dmax < 1 {
		dmax = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	px[n], py[n] = midX-20*dmax, midY-dmax
	px[n+1], py[n+1] = midX, midY+20*dmax
	px[n+2], py[n+2] = midX+20*dmax, midY-dmax

	tris := []triangle{{a: n, b: n + 1, c: n + 2}}

	for i := 0; i < n; i++ {
		bad := make([]bool, len(tris))
		edgeCount := make(map[[2]int]int)
		var edgeOrder [][2]int

		countEdge := func(u, v int) {
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if edgeCount[key] == 0 {
				edgeOrder = append(edgeOrder, key)
			}
			edgeCount[key]++
		}

		for t, tr := range tris {
			if circumcircleContains(px, py, tr, i) {
				bad[t] = true
				countEdge(tr.a, tr.b)
				countEdge(tr.b, tr.c)
				countEdge(tr.c, tr.a)
			}
		}

		kept := tris[:0]
		for t, tr := range tris {
			if !bad[t] {
				kept = append(kept, tr)
			}
		}
		tris = kept

		// Boundary edges of the removed cavity, in first-seen order.
		for _, key := range edgeOrder {
			if edgeCount[key] == 1 {
				tris = append(tris, triangle{a: key[0], b: key[1], c: i})
			}
		}
	}

	final := make([]triangle, 0, len(tris))
	for _, tr := range tris {
		if tr.a < n && tr.b < n && tr.c < n {
			final = append(final, tr)
		}
	}
	return final
}

// circumcircleContains reports whether point p lies strictly inside the
// circumcircle of tr. A degenerate (collinear) triangle contains nothing.
func circumcircleContains(px, py []float64, tr triangle, p int) bool {
	ax, ay := px[tr.a], py[tr.a]
	bx, by := px[tr.b], py[tr.b]
	cx, cy := px[tr.c], py[tr.c]

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-12 {
		return false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d

	r2 := (ax-ux)*(ax-ux) + (ay-uy)*(ay-uy)
	dx := px[p] - ux
	dy := py[p] - uy
	return dx*dx+dy*dy < r2
}
