package hospital

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Legacy flat-record format: one entity per line, the kind tag first,
// then the attributes in fixed order. Absent values are written with the
// sentinels the old dumps used.
//
//	Patient,name,age,mobile,email,password,room,surgeon,surgeryDateTime
//	FloorManager,name,age,mobile,email,password,staffId,floor
//	Surgeon,name,age,mobile,email,password,staffId,specialty
const (
	recordNoRoom    = "-1"
	recordNoSurgeon = "Not assigned"
	recordNoSurgery = "Not scheduled"
)

// WriteRecords dumps the directory in the legacy format. The password
// column carries the bcrypt hash; plaintext credentials are never stored.
func WriteRecords(w io.Writer, d *Directory) error {
	cw := csv.NewWriter(w)

	for _, p := range d.Patients() {
		room := recordNoRoom
		if p.HasRoom() {
			room = strconv.Itoa(p.Room)
		}
		surgeon := recordNoSurgeon
		if p.Surgeon != "" {
			surgeon = p.Surgeon
		}
		surgeryAt := recordNoSurgery
		if p.SurgeryScheduled() {
			surgeryAt = p.SurgeryAt.Format(SurgeryTimeLayout)
		}
		rec := []string{string(RolePatient), p.Name, strconv.Itoa(p.Age), p.Mobile, p.Email, p.PasswordHash,
			room, surgeon, surgeryAt}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, m := range d.FloorManagers() {
		rec := []string{string(RoleFloorManager), m.Name, strconv.Itoa(m.Age), m.Mobile, m.Email, m.PasswordHash,
			strconv.Itoa(m.StaffID), strconv.Itoa(m.Floor)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, s := range d.Surgeons() {
		rec := []string{string(RoleSurgeon), s.Name, strconv.Itoa(s.Age), s.Mobile, s.Email, s.PasswordHash,
			strconv.Itoa(s.StaffID), s.Specialty}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRecords parses a legacy dump into a fresh directory. Like the
// original loader it restores only the persisted attributes: imported
// patients come back not checked in and eligible, with any room, surgeon
// and surgery time overlaid. Surgeon queues are rebuilt from the patient
// rows in file order.
func ReadRecords(r io.Reader) (*Directory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // lines vary by kind

	d := NewDirectory()
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Invalid("line %d: %v", line+1, err)
		}
		line++
		if len(rec) == 0 {
			continue
		}

		switch Role(rec[0]) {
		case RolePatient:
			if err := readPatientRecord(d, rec, line); err != nil {
				return nil, err
			}
		case RoleFloorManager:
			if err := readFloorManagerRecord(d, rec, line); err != nil {
				return nil, err
			}
		case RoleSurgeon:
			if err := readSurgeonRecord(d, rec, line); err != nil {
				return nil, err
			}
		default:
			return nil, Invalid("line %d: unknown record kind %q", line, rec[0])
		}
	}

	rebuildQueues(d)
	return d, nil
}

func readPatientRecord(d *Directory, rec []string, line int) error {
	if len(rec) != 9 {
		return Invalid("line %d: patient record needs 9 fields, got %d", line, len(rec))
	}
	age, err := strconv.Atoi(rec[2])
	if err != nil {
		return Invalid("line %d: bad age %q", line, rec[2])
	}

	p := NewPatient(rec[1], age, rec[3], rec[4])
	p.PasswordHash = importPassword(rec[5])

	room, err := strconv.Atoi(rec[6])
	if err != nil {
		return Invalid("line %d: bad room %q", line, rec[6])
	}
	if room > 0 {
		if room > NumRooms {
			return Invalid("line %d: room %d out of range 1-%d", line, room, NumRooms)
		}
		p.Room = room
	}
	if rec[7] != recordNoSurgeon && rec[7] != "" {
		p.Surgeon = rec[7]
	}
	if rec[8] != recordNoSurgery && rec[8] != "" {
		at, err := ParseSurgeryTime(rec[8])
		if err != nil {
			return Invalid("line %d: malformed surgery timestamp %q", line, rec[8])
		}
		p.SurgeryAt = at
	}
	return d.addPatient(p)
}

func readFloorManagerRecord(d *Directory, rec []string, line int) error {
	if len(rec) != 8 {
		return Invalid("line %d: floor manager record needs 8 fields, got %d", line, len(rec))
	}
	age, err := strconv.Atoi(rec[2])
	if err != nil {
		return Invalid("line %d: bad age %q", line, rec[2])
	}
	staffID, err := strconv.Atoi(rec[6])
	if err != nil {
		return Invalid("line %d: bad staff ID %q", line, rec[6])
	}
	floor, err := strconv.Atoi(rec[7])
	if err != nil || floor < 1 || floor > NumFloors {
		return Invalid("line %d: bad floor %q", line, rec[7])
	}

	m := NewFloorManager(rec[1], age, rec[3], rec[4], staffID, floor)
	m.PasswordHash = importPassword(rec[5])
	return d.addFloorManager(m)
}

func readSurgeonRecord(d *Directory, rec []string, line int) error {
	if len(rec) != 8 {
		return Invalid("line %d: surgeon record needs 8 fields, got %d", line, len(rec))
	}
	age, err := strconv.Atoi(rec[2])
	if err != nil {
		return Invalid("line %d: bad age %q", line, rec[2])
	}
	staffID, err := strconv.Atoi(rec[6])
	if err != nil {
		return Invalid("line %d: bad staff ID %q", line, rec[6])
	}

	s := NewSurgeon(rec[1], age, rec[3], rec[4], staffID, rec[7])
	s.PasswordHash = importPassword(rec[5])
	return d.addSurgeon(s)
}

// importPassword accepts both our own exports (already bcrypt hashes)
// and genuinely legacy dumps with plaintext passwords, which are hashed
// on the way in.
func importPassword(v string) string {
	if strings.HasPrefix(v, "$2a$") || strings.HasPrefix(v, "$2b$") || strings.HasPrefix(v, "$2y$") {
		return v
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
	if err != nil {
		return v
	}
	return string(hash)
}

// rebuildQueues reattaches scheduled patients to their surgeons. The
// legacy dump has no queue table; a patient row naming a surgeon with a
// scheduled time is a pending entry. File order stands in for the
// original assignment order.
func rebuildQueues(d *Directory) {
	for _, p := range d.Patients() {
		if p.Surgeon == "" || !p.SurgeryScheduled() {
			continue
		}
		if s, err := d.SurgeonByName(p.Surgeon); err == nil {
			s.AddUpcoming(p)
			p.HasSurgery = true
		}
	}
}
