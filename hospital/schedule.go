package hospital

import "sort"

// The surgeon's upcoming queue. Entries keep assignment order; the
// chronological view is produced at read time by OrderedUpcoming.

// AddUpcoming appends the patient to the queue unless already present.
// Presence is keyed by patient identity, so the queue behaves as an
// insertion-ordered set.
func (s *Surgeon) AddUpcoming(p *Patient) {
	for _, q := range s.upcoming {
		if q.Key() == p.Key() {
			return
		}
	}
	s.upcoming = append(s.upcoming, p)
}

// RemoveUpcoming removes the patient from the queue by identity.
func (s *Surgeon) RemoveUpcoming(p *Patient) error {
	for i, q := range s.upcoming {
		if q.Key() == p.Key() {
			s.upcoming = append(s.upcoming[:i], s.upcoming[i+1:]...)
			return nil
		}
	}
	return NotFound("no scheduled surgery for patient %s", p.Name)
}

// Upcoming returns the queue in assignment order.
func (s *Surgeon) Upcoming() []*Patient {
	out := make([]*Patient, len(s.upcoming))
	copy(out, s.upcoming)
	return out
}

// OrderedUpcoming returns the queue sorted ascending by surgery time.
// The sort is stable, so patients scheduled for the same instant keep
// their assignment order.
func (s *Surgeon) OrderedUpcoming() []*Patient {
	out := s.Upcoming()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SurgeryAt.Before(out[j].SurgeryAt)
	})
	return out
}
