package hospital

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRecordsRoundtrip(t *testing.T) {
	d := seedDirectory(t)

	var buf bytes.Buffer
	if err := WriteRecords(&buf, d); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	if strings.Contains(buf.String(), "Passw0rd") {
		t.Fatal("dump must never contain a plaintext password")
	}

	got, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	p, err := got.PatientByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("patient missing after import: %v", err)
	}
	if p.Room != 13 || p.Surgeon != "Fiona Clark" {
		t.Errorf("room/surgeon lost in roundtrip: %+v", p)
	}
	want := time.Date(2024, 1, 31, 14, 30, 0, 0, time.UTC)
	if !p.SurgeryAt.Equal(want) {
		t.Errorf("surgery time = %v, want %v", p.SurgeryAt, want)
	}
	// The dump only carries persisted attributes: imported patients come
	// back not checked in.
	if p.CheckedIn {
		t.Error("imported patient should not be checked in")
	}

	s, err := got.SurgeonByStaffID(201)
	if err != nil {
		t.Fatalf("surgeon missing after import: %v", err)
	}
	queue := s.Upcoming()
	if len(queue) != 1 || queue[0] != p {
		t.Errorf("queue not rebuilt from patient rows: %v", queue)
	}
	if !p.HasSurgery {
		t.Error("a rebuilt queue entry should mark the surgery as booked")
	}

	managers := got.FloorManagers()
	if len(managers) != 1 || managers[0].StaffID != 101 || managers[0].Floor != 2 {
		t.Errorf("floor manager lost in roundtrip: %v", managers)
	}
}

func TestReadRecordsSentinels(t *testing.T) {
	dump := "Patient,John Smith,45,0411111111,john@example.com,Secret123,-1,Not assigned,Not scheduled\n"

	d, err := ReadRecords(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	p, err := d.PatientByEmail("john@example.com")
	if err != nil {
		t.Fatalf("patient missing: %v", err)
	}
	if p.HasRoom() || p.Surgeon != "" || p.SurgeryScheduled() {
		t.Errorf("sentinels should map to absent values, got %+v", p)
	}
	if !p.Eligible {
		t.Error("imported patient should be eligible")
	}
}

func TestReadRecordsHashesLegacyPasswords(t *testing.T) {
	dump := "Patient,John Smith,45,0411111111,john@example.com,Secret123,-1,Not assigned,Not scheduled\n"

	d, err := ReadRecords(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	p, err := d.PatientByEmail("john@example.com")
	if err != nil {
		t.Fatalf("patient missing: %v", err)
	}
	if p.PasswordHash == "Secret123" {
		t.Fatal("legacy plaintext password should be hashed on import")
	}
	if _, err := d.Login("john@example.com", "Secret123"); err != nil {
		t.Errorf("login with the legacy password failed: %v", err)
	}
}

func TestReadRecordsRejectsMalformedLines(t *testing.T) {
	cases := []struct {
		name string
		dump string
	}{
		{"unknown kind", "Nurse,John Smith,45,0411111111,john@example.com,pw,-1,x,y\n"},
		{"patient field count", "Patient,John Smith,45,0411111111,john@example.com,pw\n"},
		{"bad age", "Patient,John Smith,old,0411111111,john@example.com,pw,-1,Not assigned,Not scheduled\n"},
		{"room out of range", "Patient,John Smith,45,0411111111,john@example.com,pw,61,Not assigned,Not scheduled\n"},
		{"malformed timestamp", "Patient,John Smith,45,0411111111,john@example.com,pw,-1,Fiona Clark,sometime soon\n"},
		{"bad floor", "FloorManager,Dana White,41,0445678901,dana@example.com,pw,101,9\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ReadRecords(strings.NewReader(c.dump)); !HasCode(err, CodeInvalid) {
				t.Errorf("want INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestReadRecordsDuplicateEmail(t *testing.T) {
	dump := "Patient,John Smith,45,0411111111,john@example.com,pw,-1,Not assigned,Not scheduled\n" +
		"Patient,Jane Smith,40,0422222222,John@Example.com,pw,-1,Not assigned,Not scheduled\n"

	if _, err := ReadRecords(strings.NewReader(dump)); !HasCode(err, CodeConflict) {
		t.Errorf("duplicate email (case-insensitive) should conflict, got %v", err)
	}
}
