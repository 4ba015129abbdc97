package hospital

import "time"

// Patient lifecycle transitions. Each method checks its guard and either
// mutates or returns an error leaving the patient untouched; room and
// schedule bookkeeping that spans entities lives in the Coordinator.

// CheckIn admits the patient. Permitted only while eligible and not
// already checked in; checking in consumes the eligibility flag.
func (p *Patient) CheckIn() error {
	if p.CheckedIn {
		return NotEligible("patient %s is already checked in", p.Name)
	}
	if !p.Eligible {
		return NotEligible("patient %s is not eligible to check in", p.Name)
	}
	p.CheckedIn = true
	p.Eligible = false
	return nil
}

// assignRoom records a room on the patient. Requires a checked-in
// patient with no room and no surgery on the books.
func (p *Patient) assignRoom(room int) error {
	if !p.CheckedIn {
		return NotEligible("patient %s is not checked in", p.Name)
	}
	if p.HasRoom() {
		return Conflict("patient %s already has room %d", p.Name, p.Room)
	}
	if p.HasSurgery {
		return Conflict("patient %s already has a surgery booked", p.Name)
	}
	p.Room = room
	return nil
}

// scheduleSurgery records the surgeon and time. Requires a checked-in
// patient who holds a room and has no surgery yet, so HasSurgery can
// never be true without a room.
func (p *Patient) scheduleSurgery(surgeonName string, at time.Time) error {
	if !p.CheckedIn {
		return NotEligible("patient %s is not checked in", p.Name)
	}
	if !p.HasRoom() {
		return NotEligible("patient %s has no room assigned", p.Name)
	}
	if p.HasSurgery {
		return Conflict("patient %s already has a surgery booked", p.Name)
	}
	p.Surgeon = surgeonName
	p.SurgeryAt = at
	p.HasSurgery = true
	return nil
}

// completeSurgery marks the surgery performed. HasSurgery deliberately
// stays true: check-out is gated on it and cannot tell "scheduled" from
// "completed", matching the legacy behavior.
func (p *Patient) completeSurgery() {
	p.HasSurgery = true
}

// checkOut resets the lifecycle after surgery. The patient keeps their
// record but loses eligibility; nothing in the system restores it.
func (p *Patient) checkOut() error {
	if !p.CheckedIn {
		return NotEligible("patient %s is not checked in", p.Name)
	}
	if !p.HasSurgery {
		return NotEligible("patient %s cannot check out before surgery", p.Name)
	}
	p.CheckedIn = false
	p.Room = 0
	p.Surgeon = ""
	p.SurgeryAt = time.Time{}
	p.HasSurgery = false
	p.Eligible = false
	return nil
}

// unassignRoom clears a room lingering on a patient who is no longer
// checked in (discharged or imported that way). Eligibility is untouched.
func (p *Patient) unassignRoom() error {
	if p.CheckedIn {
		return NotEligible("patient %s is still checked in", p.Name)
	}
	if !p.HasRoom() {
		return NotFound("patient %s has no room to unassign", p.Name)
	}
	p.Room = 0
	return nil
}
