package hospital

import (
	"fmt"
	"strings"
)

// Directory is the identity store: typed collections keyed by identity
// (email for patients, staff ID for staff) with O(1) lookup. It replaces
// the legacy design of one polymorphic user list filtered per query.
// Registration order is kept for stable listings.
type Directory struct {
	patients map[string]*Patient
	managers map[int]*FloorManager
	surgeons map[int]*Surgeon
	floors   map[int]int // floor number -> managing staff ID

	patientOrder []*Patient
	managerOrder []*FloorManager
	surgeonOrder []*Surgeon
}

func NewDirectory() *Directory {
	return &Directory{
		patients: make(map[string]*Patient),
		managers: make(map[int]*FloorManager),
		surgeons: make(map[int]*Surgeon),
		floors:   make(map[int]int),
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// RegisterPatient validates the input, enforces email uniqueness, hashes
// the password and stores the new patient.
func (d *Directory) RegisterPatient(reg PatientRegistration) (*Patient, error) {
	if err := validate(reg); err != nil {
		return nil, err
	}
	p := NewPatient(reg.Name, reg.Age, reg.Mobile, reg.Email)
	if err := p.SetPassword(reg.Password); err != nil {
		return nil, err
	}
	if err := d.addPatient(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RegisterFloorManager validates the input and enforces staff ID
// uniqueness plus the one-manager-per-floor rule.
func (d *Directory) RegisterFloorManager(reg FloorManagerRegistration) (*FloorManager, error) {
	if err := validate(reg); err != nil {
		return nil, err
	}
	m := NewFloorManager(reg.Name, reg.Age, reg.Mobile, reg.Email, reg.StaffID, reg.Floor)
	if err := m.SetPassword(reg.Password); err != nil {
		return nil, err
	}
	if err := d.addFloorManager(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterSurgeon validates the input and enforces staff ID uniqueness.
func (d *Directory) RegisterSurgeon(reg SurgeonRegistration) (*Surgeon, error) {
	if err := validate(reg); err != nil {
		return nil, err
	}
	s := NewSurgeon(reg.Name, reg.Age, reg.Mobile, reg.Email, reg.StaffID, reg.Specialty)
	if err := s.SetPassword(reg.Password); err != nil {
		return nil, err
	}
	if err := d.addSurgeon(s); err != nil {
		return nil, err
	}
	return s, nil
}

// add* insert fully formed entities, enforcing only identity uniqueness.
// The load paths (store, legacy records) use them directly.

func (d *Directory) addPatient(p *Patient) error {
	if d.EmailTaken(p.Email) {
		return Conflict("email %s is already registered", p.Email)
	}
	d.patients[p.Key()] = p
	d.patientOrder = append(d.patientOrder, p)
	return nil
}

func (d *Directory) addFloorManager(m *FloorManager) error {
	if d.EmailTaken(m.Email) {
		return Conflict("email %s is already registered", m.Email)
	}
	if d.StaffIDTaken(m.StaffID) {
		return Conflict("staff ID %d is already registered", m.StaffID)
	}
	if owner, taken := d.floors[m.Floor]; taken {
		return Conflict("floor %d is already assigned to staff %d", m.Floor, owner)
	}
	d.managers[m.StaffID] = m
	d.floors[m.Floor] = m.StaffID
	d.managerOrder = append(d.managerOrder, m)
	return nil
}

func (d *Directory) addSurgeon(s *Surgeon) error {
	if d.EmailTaken(s.Email) {
		return Conflict("email %s is already registered", s.Email)
	}
	if d.StaffIDTaken(s.StaffID) {
		return Conflict("staff ID %d is already registered", s.StaffID)
	}
	d.surgeons[s.StaffID] = s
	d.surgeonOrder = append(d.surgeonOrder, s)
	return nil
}

// ---------------------------------------------------------------------------
// Authentication
// ---------------------------------------------------------------------------

// Login resolves the account by email and verifies the credential. The
// same error is returned for an unknown email and a wrong password.
func (d *Directory) Login(email, password string) (User, error) {
	u := d.userByEmail(email)
	if u == nil || !u.Profile().CheckPassword(password) {
		return nil, Unauthorized("invalid email or password")
	}
	return u, nil
}

// ChangePassword verifies the current credential before setting the new
// password.
func (d *Directory) ChangePassword(u User, current, updated string) error {
	if !u.Profile().CheckPassword(current) {
		return Unauthorized("current password is incorrect")
	}
	if strings.TrimSpace(updated) == "" {
		return Invalid("new password cannot be empty")
	}
	return u.Profile().SetPassword(updated)
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func (d *Directory) userByEmail(email string) User {
	key := strings.ToLower(email)
	if p, ok := d.patients[key]; ok {
		return p
	}
	for _, m := range d.managerOrder {
		if m.Key() == key {
			return m
		}
	}
	for _, s := range d.surgeonOrder {
		if s.Key() == key {
			return s
		}
	}
	return nil
}

// EmailTaken reports whether any account uses the email.
func (d *Directory) EmailTaken(email string) bool {
	return d.userByEmail(email) != nil
}

// StaffIDTaken reports whether any staff member holds the ID.
func (d *Directory) StaffIDTaken(id int) bool {
	_, m := d.managers[id]
	_, s := d.surgeons[id]
	return m || s
}

// FloorAssigned reports whether a floor already has a manager.
func (d *Directory) FloorAssigned(floor int) bool {
	_, ok := d.floors[floor]
	return ok
}

// AllFloorsAssigned reports whether every floor has a manager.
func (d *Directory) AllFloorsAssigned() bool {
	return len(d.floors) >= NumFloors
}

// PatientByEmail looks a patient up by identity.
func (d *Directory) PatientByEmail(email string) (*Patient, error) {
	if p, ok := d.patients[strings.ToLower(email)]; ok {
		return p, nil
	}
	return nil, NotFound("no patient registered with email %s", email)
}

// SurgeonByStaffID looks a surgeon up by identity.
func (d *Directory) SurgeonByStaffID(id int) (*Surgeon, error) {
	if s, ok := d.surgeons[id]; ok {
		return s, nil
	}
	return nil, NotFound("no surgeon registered with staff ID %d", id)
}

// SurgeonByName returns the first surgeon with the given name, in
// registration order. Patient records reference surgeons by name.
func (d *Directory) SurgeonByName(name string) (*Surgeon, error) {
	for _, s := range d.surgeonOrder {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, NotFound("no surgeon registered with name %s", name)
}

// ---------------------------------------------------------------------------
// Listings (registration order)
// ---------------------------------------------------------------------------

func (d *Directory) Patients() []*Patient {
	out := make([]*Patient, len(d.patientOrder))
	copy(out, d.patientOrder)
	return out
}

func (d *Directory) FloorManagers() []*FloorManager {
	out := make([]*FloorManager, len(d.managerOrder))
	copy(out, d.managerOrder)
	return out
}

func (d *Directory) Surgeons() []*Surgeon {
	out := make([]*Surgeon, len(d.surgeonOrder))
	copy(out, d.surgeonOrder)
	return out
}

// PatientsAwaitingRoom lists checked-in patients without a room who have
// no surgery on the books: the candidates for room assignment.
func (d *Directory) PatientsAwaitingRoom() []*Patient {
	return d.filterPatients(func(p *Patient) bool {
		return p.CheckedIn && !p.HasRoom() && !p.HasSurgery
	})
}

// PatientsReadyForSurgery lists checked-in room holders with no surgery
// booked yet: the candidates for surgery assignment.
func (d *Directory) PatientsReadyForSurgery() []*Patient {
	return d.filterPatients(func(p *Patient) bool {
		return p.CheckedIn && p.HasRoom() && !p.HasSurgery
	})
}

// PatientsOccupyingRooms lists checked-in patients holding a room: the
// candidates for check-out.
func (d *Directory) PatientsOccupyingRooms() []*Patient {
	return d.filterPatients(func(p *Patient) bool {
		return p.CheckedIn && p.HasRoom()
	})
}

// PatientsWithLingeringRooms lists patients who are not checked in but
// still hold a room: the candidates for unassignment.
func (d *Directory) PatientsWithLingeringRooms() []*Patient {
	return d.filterPatients(func(p *Patient) bool {
		return !p.CheckedIn && p.HasRoom()
	})
}

// PatientsOfSurgeon lists patients whose record names the surgeon.
func (d *Directory) PatientsOfSurgeon(s *Surgeon) []*Patient {
	return d.filterPatients(func(p *Patient) bool {
		return p.Surgeon == s.Name
	})
}

func (d *Directory) filterPatients(keep func(*Patient) bool) []*Patient {
	var out []*Patient
	for _, p := range d.patientOrder {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// BuildRegistry derives room occupancy from the patients' assignments.
// Used after loading state: the directory is the source of truth and the
// registry is rebuilt, so a stored floor can never disagree with it.
func (d *Directory) BuildRegistry() (*RoomRegistry, error) {
	reg := NewRoomRegistry()
	for _, p := range d.patientOrder {
		if !p.HasRoom() {
			continue
		}
		if err := reg.Occupy(p.Room, FloorOf(p.Room)); err != nil {
			return nil, Internal(fmt.Sprintf("restore occupancy for patient %s", p.Name), err)
		}
	}
	return reg, nil
}
