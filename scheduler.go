package glide

// frameTicker is anything the scheduler advances once per frame.
type frameTicker interface {
	tick(now float64)
}

// scheduler holds the ordered set of subscribers. Ticking iterates over a
// snapshot, so subscribers may add or remove themselves and others from
// inside a tick. Subscribers added during a tick first run on the next one.
type scheduler struct {
	items []frameTicker
	snap  []frameTicker
	depth int
}

func (s *scheduler) add(t frameTicker) {
	if s.index(t) >= 0 {
		return
	}
	s.items = append(s.items, t)
}

func (s *scheduler) remove(t frameTicker) {
	i := s.index(t)
	if i < 0 {
		return
	}
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
}

func (s *scheduler) index(t frameTicker) int {
	for i, it := range s.items {
		if it == t {
			return i
		}
	}
	return -1
}

func (s *scheduler) tick(now float64) {
	// A tick started from inside another tick gets its own snapshot.
	var snap []frameTicker
	if s.depth == 0 {
		s.snap = append(s.snap[:0], s.items...)
		snap = s.snap
	} else {
		snap = append([]frameTicker(nil), s.items...)
	}
	s.depth++
	defer func() { s.depth-- }()

	for _, t := range snap {
		t.tick(now)
	}
	if s.depth == 1 {
		clear(s.snap)
	}
}

// tweens calls fn for every subscribed tween, in subscription order, over a
// snapshot.
func (s *scheduler) tweens(fn func(t *Tween)) {
	for _, it := range append([]frameTicker(nil), s.items...) {
		if tw, ok := it.(*Tween); ok {
			fn(tw)
		}
	}
}
