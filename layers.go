package main

// reindex assigns zIndex = position+1 so z-indices always cover 1..n in
// store order, and rebuilds the id map.
func (s *elementStore) reindex() {
	for i := range s.elements {
		s.elements[i].ZIndex = i + 1
	}
	s.rebuildIndex()
}

// moveLayer swaps the element at index with its neighbor in direction
// (-1 down, +1 up). Out-of-range indices and other directions are no-ops.
func (s *elementStore) moveLayer(index, direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	target := index + direction
	if index < 0 || index >= len(s.elements) || target < 0 || target >= len(s.elements) {
		return false
	}
	s.elements[index], s.elements[target] = s.elements[target], s.elements[index]
	s.reindex()
	return true
}

// raise moves id all the way to the top (toTop) or bottom of the stack.
func (s *elementStore) raise(id string, toTop bool) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	moved := false
	if toTop {
		for ; i < len(s.elements)-1; i++ {
			s.elements[i], s.elements[i+1] = s.elements[i+1], s.elements[i]
			moved = true
		}
	} else {
		for ; i > 0; i-- {
			s.elements[i], s.elements[i-1] = s.elements[i-1], s.elements[i]
			moved = true
		}
	}
	if moved {
		s.reindex()
	}
	return moved
}
