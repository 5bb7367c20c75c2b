package wfc

// directions lists the neighbour offsets in visiting order: up, down, left, right.
var directions = [4]Coord{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func (g *Grid) propagate(from Coord) {
	if g.cfg.Propagation == PropagateWorklist {
		g.propagateWorklist(from)
		return
	}
	g.propagateRecursive(from)
}

// propagateRecursive narrows each unresolved neighbour against the current
// mask at c and descends into every neighbour that changed.
func (g *Grid) propagateRecursive(c Coord) {
	for _, d := range directions {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if !g.cells.InBounds(n.X, n.Y) {
			continue
		}
		neighbor := g.cells.At(n.X, n.Y)
		if neighbor.Resolved() {
			continue
		}
		if neighbor.Propagate(g.cells.At(c.X, c.Y).State()) {
			g.propagateRecursive(n)
		}
	}
}

// propagateWorklist is propagateRecursive with an explicit stack. Changed
// neighbours are pushed in reverse so "up" is still expanded first.
func (g *Grid) propagateWorklist(from Coord) {
	stack := []Coord{from}
	var changed [len(directions)]Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := 0
		for _, d := range directions {
			nc := Coord{X: c.X + d.X, Y: c.Y + d.Y}
			if !g.cells.InBounds(nc.X, nc.Y) {
				continue
			}
			neighbor := g.cells.At(nc.X, nc.Y)
			if neighbor.Resolved() {
				continue
			}
			if neighbor.Propagate(g.cells.At(c.X, c.Y).State()) {
				changed[n] = nc
				n++
			}
		}
		for i := n - 1; i >= 0; i-- {
			stack = append(stack, changed[i])
		}
	}
}
