package algo

// insertionSort moves the key captured from position i backward through the
// sorted prefix one swap per step. j == -1 is the floor: the key reached
// position 0 and no comparison is made.
type insertionSort struct {
	base
	i, j, key int
}

func (s *insertionSort) Kind() Kind { return Insertion }

func (s *insertionSort) Done() bool { return s.i >= s.seq.Len() }

func (s *insertionSort) rewind() {
	s.i, s.j, s.key = 1, 0, 0
	if !s.Done() {
		s.key = s.at(Insertion, s.i)
	}
}

func (s *insertionSort) Reset() {
	s.reseed()
	s.rewind()
}

func (s *insertionSort) Step() {
	if s.Done() {
		return
	}
	s.stats.Steps++

	if s.j >= 0 && s.aboveKey(s.j) {
		s.swap(Insertion, s.j, s.j+1)
		s.j--
		return
	}

	s.i++
	s.j = s.i - 1
	if !s.Done() {
		s.key = s.at(Insertion, s.i)
	}
}

func (s *insertionSort) aboveKey(j int) bool {
	s.stats.Comparisons++
	return s.at(Insertion, j) > s.key
}

func (s *insertionSort) Render() RenderState {
	return s.render(Insertion, s.Done(), func(i int) Role {
		switch {
		case i == s.j || i == s.j+1:
			return RoleCompare
		case i < s.i:
			return RoleSorted
		default:
			return RoleUnsorted
		}
	},
		Cursor{Name: "i", Index: s.i},
		Cursor{Name: "j", Index: s.j},
		Cursor{Name: "key", Index: s.key},
	)
}
