package main

// elementStore is the ordered element collection (index 0 paints first)
// with an id -> position map kept in step with the slice.
type elementStore struct {
	elements []Element
	index    map[string]int
}

func newElementStore() *elementStore {
	return &elementStore{
		elements: make([]Element, 0),
		index:    make(map[string]int),
	}
}

// Get returns a pointer into the store, valid until the next structural
// change, or nil when id is not live.
func (s *elementStore) Get(id string) *Element {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	return &s.elements[i]
}

func (s *elementStore) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// Append adds e on top of the stack and reindexes.
func (s *elementStore) Append(e Element) {
	s.elements = append(s.elements, e)
	s.reindex()
}

func (s *elementStore) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
	s.reindex()
	return true
}

// Replace swaps in a loaded element sequence. zIndex values are kept as
// loaded; only the id map is rebuilt.
func (s *elementStore) Replace(elements []Element) {
	s.elements = elements
	s.rebuildIndex()
}

// liveIDs returns the numeric part of every allocator-shaped id.
func (s *elementStore) liveIDs() map[int]bool {
	ids := make(map[int]bool, len(s.elements))
	for _, e := range s.elements {
		if n, ok := parseID(e.ID); ok {
			ids[n] = true
		}
	}
	return ids
}

func (s *elementStore) nextID() string {
	return formatID(allocateID(s.liveIDs()))
}

func (s *elementStore) rebuildIndex() {
	s.index = make(map[string]int, len(s.elements))
	for i, e := range s.elements {
		s.index[e.ID] = i
	}
}
