package netscape

// folderStack tracks the tags of the folder headings enclosing the current
// line. One stack lives for the duration of a single parse call.
type folderStack struct {
	groups [][]string
}

func (s *folderStack) push(tags []string) {
	s.groups = append(s.groups, tags)
}

// pop removes the innermost group. Popping an empty stack returns an empty
// slice; exports with more closing lists than headings are common.
func (s *folderStack) pop() []string {
	if len(s.groups) == 0 {
		return []string{}
	}
	last := s.groups[len(s.groups)-1]
	s.groups = s.groups[:len(s.groups)-1]
	return last
}

func (s *folderStack) depth() int {
	return len(s.groups)
}

// flatten returns the flattened tags of every open folder, outermost first.
func (s *folderStack) flatten() []string {
	return FlattenTagsList(s.groups)
}
