package hospital

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SurgeryTimeLayout is the fixed textual format for surgery schedules,
// e.g. "14:30 31/01/2024". The legacy record dump uses the same layout.
const SurgeryTimeLayout = "15:04 02/01/2006"

// ParseSurgeryTime parses a schedule timestamp in the fixed layout.
func ParseSurgeryTime(s string) (time.Time, error) {
	return time.Parse(SurgeryTimeLayout, s)
}

// Role identifies which kind of user an account belongs to.
type Role string

const (
	RolePatient      Role = "Patient"
	RoleFloorManager Role = "FloorManager"
	RoleSurgeon      Role = "Surgeon"
)

// User is the tagged view of any registered account, returned by Login.
// Callers type-switch on the concrete type for role-specific data.
type User interface {
	Profile() *Account
	Role() Role
}

// Account holds the identity fields shared by every user.
type Account struct {
	Name         string
	Age          int
	Mobile       string
	Email        string
	PasswordHash string `json:"-"`
}

// Key returns the canonical identity key for the account: its email,
// lower-cased. Email comparison is case-insensitive throughout.
func (a *Account) Key() string { return strings.ToLower(a.Email) }

// SetPassword replaces the stored credential with a bcrypt hash of pw.
func (a *Account) SetPassword(pw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return Internal("hash password", err)
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether pw matches the stored credential.
func (a *Account) CheckPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(pw)) == nil
}

// Patient carries the admission lifecycle state. Absent values are the
// zero values: Room 0 means no room, Surgeon "" means none assigned, a
// zero SurgeryAt means nothing scheduled.
type Patient struct {
	Account
	Room       int       // global room number, 0 = unassigned
	Surgeon    string    // assigned surgeon's name
	SurgeryAt  time.Time // scheduled surgery time
	CheckedIn  bool
	HasSurgery bool
	Eligible   bool // may check in
}

// NewPatient returns a freshly registered patient: not checked in, no
// room, no surgery, eligible for check-in.
func NewPatient(name string, age int, mobile, email string) *Patient {
	return &Patient{
		Account:  Account{Name: name, Age: age, Mobile: mobile, Email: email},
		Eligible: true,
	}
}

func (p *Patient) Profile() *Account { return &p.Account }
func (p *Patient) Role() Role        { return RolePatient }

// HasRoom reports whether the patient currently holds a room.
func (p *Patient) HasRoom() bool { return p.Room != 0 }

// SurgeryScheduled reports whether a surgeon and time are assigned.
func (p *Patient) SurgeryScheduled() bool { return !p.SurgeryAt.IsZero() }

// Staff holds the fields shared by all staff accounts.
type Staff struct {
	Account
	StaffID int // unique across all staff, 100-999
}

// FloorManager is the staff member responsible for one floor's rooms.
type FloorManager struct {
	Staff
	Floor int // 1-6, unique across managers
}

func NewFloorManager(name string, age int, mobile, email string, staffID, floor int) *FloorManager {
	return &FloorManager{
		Staff: Staff{Account: Account{Name: name, Age: age, Mobile: mobile, Email: email}, StaffID: staffID},
		Floor: floor,
	}
}

func (m *FloorManager) Profile() *Account { return &m.Account }
func (m *FloorManager) Role() Role        { return RoleFloorManager }

// Surgeon is a staff member with a specialty and a queue of pending
// surgeries. The queue keeps assignment order; chronological ordering is
// computed at read time, see OrderedUpcoming.
type Surgeon struct {
	Staff
	Specialty string
	upcoming  []*Patient
}

func NewSurgeon(name string, age int, mobile, email string, staffID int, specialty string) *Surgeon {
	return &Surgeon{
		Staff:     Staff{Account: Account{Name: name, Age: age, Mobile: mobile, Email: email}, StaffID: staffID},
		Specialty: specialty,
	}
}

func (s *Surgeon) Profile() *Account { return &s.Account }
func (s *Surgeon) Role() Role        { return RoleSurgeon }

// Specialties a surgeon may register with.
var Specialties = []string{
	"General Surgeon",
	"Orthopaedic Surgeon",
	"Cardiothoracic Surgeon",
	"Neurosurgeon",
}
