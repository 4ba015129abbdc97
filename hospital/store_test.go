package hospital

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	st, err := OpenStore(path, testLogger())
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// seedDirectory builds a directory with every entity kind and one
// pending surgery booked through the coordinator.
func seedDirectory(t *testing.T) *Directory {
	t.Helper()

	d := NewDirectory()
	p := NewPatient("Alice Nguyen", 34, "0412345678", "alice@example.com")
	p.PasswordHash = "$2a$10$fakehashfakehashfakehash"
	if err := d.addPatient(p); err != nil {
		t.Fatalf("addPatient failed: %v", err)
	}
	m := NewFloorManager("Dana White", 41, "0445678901", "dana@example.com", 101, 2)
	m.PasswordHash = "$2a$10$fakehashfakehashfakehash"
	if err := d.addFloorManager(m); err != nil {
		t.Fatalf("addFloorManager failed: %v", err)
	}
	s := NewSurgeon("Fiona Clark", 45, "0467890123", "fiona@example.com", 201, "General Surgeon")
	s.PasswordHash = "$2a$10$fakehashfakehashfakehash"
	if err := d.addSurgeon(s); err != nil {
		t.Fatalf("addSurgeon failed: %v", err)
	}

	reg, err := d.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	c := NewCoordinator(reg, d)
	if err := c.CheckInPatient(p); err != nil {
		t.Fatalf("CheckInPatient failed: %v", err)
	}
	if err := c.AssignRoomToPatient(p, 2, 3); err != nil {
		t.Fatalf("AssignRoomToPatient failed: %v", err)
	}
	at := time.Date(2024, 1, 31, 14, 30, 0, 0, time.UTC)
	if err := c.AssignSurgeryToPatient(p, s, at); err != nil {
		t.Fatalf("AssignSurgeryToPatient failed: %v", err)
	}
	return d
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")
	st := openTestStore(t, path)

	if err := st.Save(seedDirectory(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, err := got.PatientByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("patient missing after reload: %v", err)
	}
	if !p.CheckedIn || p.Room != 13 || p.Surgeon != "Fiona Clark" || !p.HasSurgery {
		t.Errorf("patient state lost in roundtrip: %+v", p)
	}
	want := time.Date(2024, 1, 31, 14, 30, 0, 0, time.UTC)
	if !p.SurgeryAt.Equal(want) {
		t.Errorf("surgery time = %v, want %v", p.SurgeryAt, want)
	}
	if p.Eligible {
		t.Error("consumed eligibility should survive the roundtrip")
	}

	s, err := got.SurgeonByStaffID(201)
	if err != nil {
		t.Fatalf("surgeon missing after reload: %v", err)
	}
	queue := s.Upcoming()
	if len(queue) != 1 || queue[0].Email != "alice@example.com" {
		t.Errorf("queue lost in roundtrip: %v", queue)
	}
	// The queue entry must point at the reloaded patient, not a copy.
	if queue[0] != p {
		t.Error("queue should reference the directory's patient")
	}

	m := got.FloorManagers()
	if len(m) != 1 || m[0].Floor != 2 || m[0].StaffID != 101 {
		t.Errorf("floor manager lost in roundtrip: %v", m)
	}

	reg, err := got.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	if !reg.Occupied(13) {
		t.Error("occupancy should be derivable after reload")
	}
}

func TestSaveIsACompleteSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")
	st := openTestStore(t, path)

	if err := st.Save(seedDirectory(t)); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	// Saving a smaller directory must not leave stale rows behind.
	d := NewDirectory()
	p := NewPatient("Bob Taylor", 58, "0423456789", "bob@example.com")
	if err := d.addPatient(p); err != nil {
		t.Fatalf("addPatient failed: %v", err)
	}
	if err := st.Save(d); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Patients()) != 1 || len(got.Surgeons()) != 0 || len(got.FloorManagers()) != 0 {
		t.Errorf("old snapshot leaked into the new one: %d patients, %d surgeons, %d managers",
			len(got.Patients()), len(got.Surgeons()), len(got.FloorManagers()))
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")
	st := openTestStore(t, path)

	d, err := st.Load()
	if err != nil {
		t.Fatalf("Load on a fresh database failed: %v", err)
	}
	if len(d.Patients()) != 0 || len(d.FloorManagers()) != 0 || len(d.Surgeons()) != 0 {
		t.Error("fresh database should load an empty directory")
	}
}

func TestReopenSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")

	st, err := OpenStore(path, testLogger())
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	if err := st.Save(seedDirectory(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	st2 := openTestStore(t, path)
	d, err := st2.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if _, err := d.PatientByEmail("alice@example.com"); err != nil {
		t.Errorf("patient missing after reopen: %v", err)
	}
}
