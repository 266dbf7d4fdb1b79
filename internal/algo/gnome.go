package algo

// gnomeSort walks forward while adjacent pairs are ordered and steps back
// after every swap.
type gnomeSort struct {
	base
	i int
}

func (g *gnomeSort) Kind() Kind { return Gnome }

func (g *gnomeSort) Done() bool { return g.i >= g.seq.Len() }

func (g *gnomeSort) rewind() { g.i = 0 }

func (g *gnomeSort) Reset() {
	g.reseed()
	g.rewind()
}

func (g *gnomeSort) Step() {
	if g.Done() {
		return
	}
	g.stats.Steps++

	if g.i == 0 {
		g.i = 1
		return
	}
	if !g.less(Gnome, g.i, g.i-1) {
		g.i++
		return
	}
	g.swap(Gnome, g.i, g.i-1)
	g.i--
}

func (g *gnomeSort) Render() RenderState {
	return g.render(Gnome, g.Done(), func(i int) Role {
		if i == g.i || i == g.i-1 {
			return RoleCompare
		}
		return RoleUnsorted
	}, Cursor{Name: "i", Index: g.i})
}
