package graph

import (
	"math"
	"math/rand"
)

// Position is a 2D layout coordinate on the output canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// canvasSize is the side of the square the normalized layout fills,
// centered on the origin. Renderers rely on a stable initial viewport.
const canvasSize = 6000.0

// SpringLayout computes a force-directed embedding of the graph. The
// random initial placement is driven entirely by seed, and nodes iterate
// in insertion order, so positions are reproducible; the seed should be
// recorded next to the output.
func SpringLayout(g Graph, seed int64, iterations int) map[string]Position {
	n := len(g.Nodes)
	if n == 0 {
		return map[string]Position{}
	}
	if iterations <= 0 {
		iterations = 100
	}

	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	indexOf := make(map[string]int, n)
	for i, node := range g.Nodes {
		indexOf[node.Id] = i
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}

	type pair struct{ a, b int }
	seen := make(map[pair]bool)
	var links []pair
	for _, edge := range g.Edges {
		a, okA := indexOf[edge.Source]
		b, okB := indexOf[edge.Target]
		if !okA || !okB || a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if !seen[pair{a, b}] {
			seen[pair{a, b}] = true
			links = append(links, pair{a, b})
		}
	}

	// Fruchterman-Reingold on the unit square: repulsion k^2/d between all
	// pairs, attraction d^2/k along edges, displacement capped by a
	// temperature that cools linearly.
	k := math.Sqrt(1.0 / float64(n))
	dispX := make([]float64, n)
	dispY := make([]float64, n)
	for iteration := 0; iteration < iterations; iteration++ {
		temperature := 0.1 * (1.0 - float64(iteration)/float64(iterations))

		for i := range dispX {
			dispX[i], dispY[i] = 0, 0
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := xs[i]-xs[j], ys[i]-ys[j]
				distance := math.Hypot(dx, dy)
				if distance < 1e-9 {
					distance = 1e-9
					dx = 1e-9
				}
				repulsion := k * k / distance
				dispX[i] += dx / distance * repulsion
				dispY[i] += dy / distance * repulsion
				dispX[j] -= dx / distance * repulsion
				dispY[j] -= dy / distance * repulsion
			}
		}
		for _, link := range links {
			dx, dy := xs[link.a]-xs[link.b], ys[link.a]-ys[link.b]
			distance := math.Hypot(dx, dy)
			if distance < 1e-9 {
				continue
			}
			attraction := distance * distance / k
			dispX[link.a] -= dx / distance * attraction
			dispY[link.a] -= dy / distance * attraction
			dispX[link.b] += dx / distance * attraction
			dispY[link.b] += dy / distance * attraction
		}
		for i := 0; i < n; i++ {
			length := math.Hypot(dispX[i], dispY[i])
			if length < 1e-9 {
				continue
			}
			step := math.Min(length, temperature)
			xs[i] += dispX[i] / length * step
			ys[i] += dispY[i] / length * step
		}
	}

	return normalize(g, xs, ys)
}

// normalize rescales raw coordinates onto the fixed square canvas,
// centered on the origin.
func normalize(g Graph, xs, ys []float64) map[string]Position {
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	spanX := math.Max(maxX-minX, 1e-6)
	spanY := math.Max(maxY-minY, 1e-6)

	positions := make(map[string]Position, len(g.Nodes))
	for i, node := range g.Nodes {
		positions[node.Id] = Position{
			X: ((xs[i]-minX)/spanX - 0.5) * canvasSize,
			Y: ((ys[i]-minY)/spanY - 0.5) * canvasSize,
		}
	}
	return positions
}
