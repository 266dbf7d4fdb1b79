package algo

// selectionSort scans [i, n) with j, tracking the smallest value seen, and
// swaps it into position i once the scan reaches the end.
type selectionSort struct {
	base
	i, j, smallest int
}

func (s *selectionSort) Kind() Kind { return Selection }

func (s *selectionSort) Done() bool { return s.i >= s.seq.Len() }

func (s *selectionSort) rewind() {
	s.i, s.j, s.smallest = 0, 0, 0
}

func (s *selectionSort) Reset() {
	s.reseed()
	s.rewind()
}

func (s *selectionSort) Step() {
	if s.Done() {
		return
	}
	s.stats.Steps++

	if s.j < s.seq.Len() {
		if s.less(Selection, s.j, s.smallest) {
			s.smallest = s.j
		}
		s.j++
		return
	}

	if s.smallest != s.i {
		s.swap(Selection, s.i, s.smallest)
	}
	s.i++
	s.j = s.i
	s.smallest = s.i
}

func (s *selectionSort) Render() RenderState {
	return s.render(Selection, s.Done(), func(i int) Role {
		switch {
		case i == s.smallest:
			return RoleCandidate
		case i == s.j:
			return RoleCursor
		case i < s.i:
			return RoleSorted
		default:
			return RoleUnsorted
		}
	},
		Cursor{Name: "i", Index: s.i},
		Cursor{Name: "j", Index: s.j},
		Cursor{Name: "smallest", Index: s.smallest},
	)
}
