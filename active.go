package glide

// activeSet records which tween drives each (target, property name) pair.
// At most one tween owns a pair; claiming a pair evicts the previous owner.
type activeSet struct {
	owners map[any]map[string]*Tween
}

func newActiveSet() activeSet {
	return activeSet{owners: make(map[any]map[string]*Tween)}
}

// claim makes t the owner of (target, name). A previous owner loses its
// binding for name before t is recorded.
func (s *activeSet) claim(target any, name string, t *Tween) {
	if prev := s.owner(target, name); prev != nil && prev != t {
		prev.deactivateName(name)
	}
	props := s.owners[target]
	if props == nil {
		props = make(map[string]*Tween)
		s.owners[target] = props
	}
	props[name] = t
}

// release drops (target, name) if t still owns it.
func (s *activeSet) release(target any, name string, t *Tween) {
	props := s.owners[target]
	if props == nil || props[name] != t {
		return
	}
	delete(props, name)
	if len(props) == 0 {
		delete(s.owners, target)
	}
}

func (s *activeSet) owner(target any, name string) *Tween {
	return s.owners[target][name]
}

func (s *activeSet) len() int {
	n := 0
	for _, props := range s.owners {
		n += len(props)
	}
	return n
}
