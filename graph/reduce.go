package graph

import "sort"

// Reduce returns the transitive reduction of the hard-prerequisite
// relation: self-loops dropped, strongly connected components collapsed
// so the component graph is a DAG, redundant component edges removed, and
// each surviving component edge represented by its lexicographically
// first original edge. Edges inside a component are kept as-is. The
// representative-edge rule makes the output deterministic.
func Reduce(g Graph) Graph {
	ids := make([]string, len(g.Nodes))
	indexOf := make(map[string]int, len(g.Nodes))
	for i, node := range g.Nodes {
		ids[i] = node.Id
		indexOf[node.Id] = i
	}

	adjacency := make([][]int, len(ids))
	edgeSeen := make(map[[2]int]bool)
	for _, edge := range g.Edges {
		if edge.Kind != EdgeHard {
			continue
		}
		source, okSource := indexOf[edge.Source]
		target, okTarget := indexOf[edge.Target]
		if !okSource || !okTarget || source == target {
			continue
		}
		if edgeSeen[[2]int{source, target}] {
			continue
		}
		edgeSeen[[2]int{source, target}] = true
		adjacency[source] = append(adjacency[source], target)
	}

	component := stronglyConnected(adjacency)

	componentCount := 0
	for _, c := range component {
		if c+1 > componentCount {
			componentCount = c + 1
		}
	}

	// Component DAG plus the original edges crossing each component pair.
	dag := make([][]int, componentCount)
	dagSeen := make(map[[2]int]bool)
	crossing := make(map[[2]int][][2]string)
	reduced := Graph{Nodes: g.Nodes}
	for source, targets := range adjacency {
		for _, target := range targets {
			cs, ct := component[source], component[target]
			if cs == ct {
				// Intra-component edges survive reduction untouched.
				reduced.Edges = append(reduced.Edges, Edge{Source: ids[source], Target: ids[target], Kind: EdgeHard})
				continue
			}
			key := [2]int{cs, ct}
			crossing[key] = append(crossing[key], [2]string{ids[source], ids[target]})
			if !dagSeen[key] {
				dagSeen[key] = true
				dag[cs] = append(dag[cs], ct)
			}
		}
	}

	kept := reduceDAG(dag)
	for _, key := range sortedKeys(crossing) {
		if !kept[key] {
			continue
		}
		representatives := crossing[key]
		sort.Slice(representatives, func(i, j int) bool {
			if representatives[i][0] != representatives[j][0] {
				return representatives[i][0] < representatives[j][0]
			}
			return representatives[i][1] < representatives[j][1]
		})
		first := representatives[0]
		reduced.Edges = append(reduced.Edges, Edge{Source: first[0], Target: first[1], Kind: EdgeHard})
	}

	return reduced
}

// reduceDAG marks which DAG edges survive transitive reduction: an edge
// u->v is redundant when v is reachable from another successor of u.
func reduceDAG(dag [][]int) map[[2]int]bool {
	kept := make(map[[2]int]bool)
	for u, successors := range dag {
		for _, v := range successors {
			redundant := false
			for _, w := range successors {
				if w != v && reachable(dag, w, v) {
					redundant = true
					break
				}
			}
			if !redundant {
				kept[[2]int{u, v}] = true
			}
		}
	}
	return kept
}

func reachable(dag [][]int, from, to int) bool {
	if from == to {
		return true
	}
	visited := make(map[int]bool)
	stack := []int{from}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		for _, next := range dag[node] {
			if next == to {
				return true
			}
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// stronglyConnected is Tarjan's algorithm, iterative to keep deep
// prerequisite chains off the call stack. Component ids are assigned in
// discovery order.
func stronglyConnected(adjacency [][]int) []int {
	n := len(adjacency)
	const unvisited = -1

	index := make([]int, n)
	lowLink := make([]int, n)
	component := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
		component[i] = unvisited
	}

	var stack []int
	nextIndex := 0
	componentCount := 0

	type frame struct {
		node int
		next int
	}

	for start := 0; start < n; start++ {
		if index[start] != unvisited {
			continue
		}
		frames := []frame{{node: start}}
		index[start] = nextIndex
		lowLink[start] = nextIndex
		nextIndex++
		stack = append(stack, start)
		onStack[start] = true

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			if top.next < len(adjacency[top.node]) {
				next := adjacency[top.node][top.next]
				top.next++
				if index[next] == unvisited {
					index[next] = nextIndex
					lowLink[next] = nextIndex
					nextIndex++
					stack = append(stack, next)
					onStack[next] = true
					frames = append(frames, frame{node: next})
				} else if onStack[next] {
					if index[next] < lowLink[top.node] {
						lowLink[top.node] = index[next]
					}
				}
				continue
			}

			node := top.node
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].node
				if lowLink[node] < lowLink[parent] {
					lowLink[parent] = lowLink[node]
				}
			}
			if lowLink[node] == index[node] {
				for {
					member := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[member] = false
					component[member] = componentCount
					if member == node {
						break
					}
				}
				componentCount++
			}
		}
	}

	return component
}

func sortedKeys(m map[[2]int][][2]string) [][2]int {
	keys := make([][2]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	return keys
}
