package algo

// bubbleSort compares the pair (j, j+1) once per step. After pass i the last
// i+1 positions hold their final values.
type bubbleSort struct {
	base
	i, j int
}

func (b *bubbleSort) Kind() Kind { return Bubble }

func (b *bubbleSort) Done() bool { return b.i >= b.seq.Len()-1 }

func (b *bubbleSort) rewind() {
	b.i, b.j = 0, 0
}

func (b *bubbleSort) Reset() {
	b.reseed()
	b.rewind()
}

func (b *bubbleSort) Step() {
	if b.Done() {
		return
	}
	b.stats.Steps++

	if b.j < b.seq.Len()-b.i-1 {
		if b.less(Bubble, b.j+1, b.j) {
			b.swap(Bubble, b.j, b.j+1)
		}
		b.j++
		return
	}

	b.i++
	b.j = 0
}

func (b *bubbleSort) Render() RenderState {
	n := b.seq.Len()
	return b.render(Bubble, b.Done(), func(i int) Role {
		switch {
		case i == b.j || i == b.j+1:
			return RoleCompare
		case i >= n-b.i:
			return RoleSorted
		default:
			return RoleUnsorted
		}
	},
		Cursor{Name: "i", Index: b.i},
		Cursor{Name: "j", Index: b.j},
	)
}
