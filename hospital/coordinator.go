package hospital

import (
	"sync"
	"time"
)

// Coordinator orchestrates every operation that touches more than one
// entity: room registry, patient state and surgeon queues must move in
// lock-step. It owns no state of its own; the directory and registry are
// the sources of truth. One mutex guards all operations so the
// occupancy/patient and patient/queue invariants hold under concurrent
// callers. Every guard is checked before the first mutation, so a failed
// operation leaves no partial state behind.
type Coordinator struct {
	mu    sync.Mutex
	rooms *RoomRegistry
	dir   *Directory
}

func NewCoordinator(rooms *RoomRegistry, dir *Directory) *Coordinator {
	return &Coordinator{rooms: rooms, dir: dir}
}

// CheckInPatient admits the patient. Single-entity, but routed through
// the coordinator so all lifecycle writes share one lock.
func (c *Coordinator) CheckInPatient(p *Patient) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return p.CheckIn()
}

// AssignRoomToPatient maps the floor-local room number to the global one,
// verifies availability and the patient's guards, then commits both the
// patient's room and the registry's occupancy together.
func (c *Coordinator) AssignRoomToPatient(p *Patient, floor, localRoom int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if floor < 1 || floor > NumFloors {
		return Invalid("floor %d is out of range 1-%d", floor, NumFloors)
	}
	if localRoom < 1 || localRoom > RoomsPerFloor {
		return Invalid("room %d is out of range 1-%d", localRoom, RoomsPerFloor)
	}
	room := GlobalRoom(floor, localRoom)
	if !c.rooms.IsAvailable(room, floor) {
		return Conflict("room %d on floor %d is not available", localRoom, floor)
	}
	if err := p.assignRoom(room); err != nil {
		return err
	}
	// Cannot fail: availability was checked under the same lock.
	return c.rooms.Occupy(room, floor)
}

// AssignSurgeryToPatient books the surgery on the patient and enqueues
// the patient with the surgeon as one commit; neither side changes if a
// guard fails.
func (c *Coordinator) AssignSurgeryToPatient(p *Patient, s *Surgeon, at time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if at.IsZero() {
		return Invalid("surgery time is required")
	}
	if err := p.scheduleSurgery(s.Name, at); err != nil {
		return err
	}
	s.AddUpcoming(p)
	return nil
}

// PerformSurgery removes the patient from the surgeon's queue. The
// patient's HasSurgery flag stays set; check-out relies on it.
func (c *Coordinator) PerformSurgery(s *Surgeon, p *Patient) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := s.RemoveUpcoming(p); err != nil {
		return err
	}
	p.completeSurgery()
	return nil
}

// UnassignRoom releases a room lingering on a patient who is no longer
// checked in, keeping registry and patient in lock-step.
func (c *Coordinator) UnassignRoom(p *Patient) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := p.Room
	if err := p.unassignRoom(); err != nil {
		return err
	}
	return c.rooms.Release(room, FloorOf(room))
}

// CheckOutPatient discharges the patient: the room is released, any
// pending queue entry with their surgeon is dropped so no orphan survives
// the reset, and the lifecycle fields return to their post-discharge
// state (not eligible to check in again).
func (c *Coordinator) CheckOutPatient(p *Patient) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !p.CheckedIn {
		return NotEligible("patient %s is not checked in", p.Name)
	}
	if !p.HasSurgery {
		return NotEligible("patient %s cannot check out before surgery", p.Name)
	}
	if p.HasRoom() {
		if err := c.rooms.Release(p.Room, FloorOf(p.Room)); err != nil {
			return err
		}
	}
	if p.Surgeon != "" {
		if s, err := c.dir.SurgeonByName(p.Surgeon); err == nil {
			// Absent is fine: the surgery may already have been performed.
			_ = s.RemoveUpcoming(p)
		}
	}
	return p.checkOut()
}
