package storage

// subscribers is the same-process change-notification registry shared by
// all store backends. Cross-process consistency is not guaranteed beyond
// what the underlying storage primitive provides.
type subscribers struct {
	fns map[string][]func()
}

func (s *subscribers) subscribe(key string, fn func()) {
	if s.fns == nil {
		s.fns = make(map[string][]func())
	}
	s.fns[key] = append(s.fns[key], fn)
}

func (s *subscribers) notify(key string) {
	for _, fn := range s.fns[key] {
		fn()
	}
}
