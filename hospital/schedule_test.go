package hospital

import (
	"testing"
	"time"
)

func testSurgeon() *Surgeon {
	return NewSurgeon("Fiona Clark", 45, "0467890123", "fiona@example.com", 201, "General Surgeon")
}

func surgeryPatient(name, email string, at time.Time) *Patient {
	p := NewPatient(name, 34, "0412345678", email)
	p.SurgeryAt = at
	return p
}

func TestAddUpcomingIsASet(t *testing.T) {
	s := testSurgeon()
	p := surgeryPatient("Alice Nguyen", "alice@example.com", time.Now())

	s.AddUpcoming(p)
	s.AddUpcoming(p)
	if got := len(s.Upcoming()); got != 1 {
		t.Errorf("duplicate AddUpcoming should be a no-op, queue has %d entries", got)
	}
}

func TestRemoveUpcoming(t *testing.T) {
	s := testSurgeon()
	a := surgeryPatient("Alice Nguyen", "alice@example.com", time.Now())
	b := surgeryPatient("Bob Taylor", "bob@example.com", time.Now())

	s.AddUpcoming(a)
	if err := s.RemoveUpcoming(b); !HasCode(err, CodeNotFound) {
		t.Errorf("removing an absent patient should be not-found, got %v", err)
	}
	if err := s.RemoveUpcoming(a); err != nil {
		t.Fatalf("RemoveUpcoming failed: %v", err)
	}
	if len(s.Upcoming()) != 0 {
		t.Error("queue should be empty")
	}
}

func TestOrderedUpcomingSortsByTime(t *testing.T) {
	base := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	s := testSurgeon()

	late := surgeryPatient("Alice Nguyen", "alice@example.com", base.Add(4*time.Hour))
	early := surgeryPatient("Bob Taylor", "bob@example.com", base)
	mid := surgeryPatient("Carol Jones", "carol@example.com", base.Add(2*time.Hour))

	s.AddUpcoming(late)
	s.AddUpcoming(early)
	s.AddUpcoming(mid)

	ordered := s.OrderedUpcoming()
	want := []*Patient{early, mid, late}
	for i, p := range want {
		if ordered[i] != p {
			t.Fatalf("ordered[%d] = %s, want %s", i, ordered[i].Name, p.Name)
		}
	}

	// Assignment order is untouched.
	queue := s.Upcoming()
	if queue[0] != late || queue[1] != early || queue[2] != mid {
		t.Error("Upcoming should keep assignment order")
	}
}

func TestOrderedUpcomingStableOnTies(t *testing.T) {
	at := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	s := testSurgeon()

	first := surgeryPatient("Alice Nguyen", "alice@example.com", at)
	second := surgeryPatient("Bob Taylor", "bob@example.com", at)

	s.AddUpcoming(first)
	s.AddUpcoming(second)

	ordered := s.OrderedUpcoming()
	if ordered[0] != first || ordered[1] != second {
		t.Error("equal surgery times should keep assignment order")
	}
}
