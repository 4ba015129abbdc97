package hospital

import "testing"

func validPatientReg() PatientRegistration {
	return PatientRegistration{
		Name: "Alice Nguyen", Age: 34, Mobile: "0412345678",
		Email: "alice@example.com", Password: "Passw0rd1",
	}
}

func validManagerReg() FloorManagerRegistration {
	return FloorManagerRegistration{
		Name: "Dana White", Age: 41, Mobile: "0445678901",
		Email: "dana@example.com", Password: "Passw0rd4",
		StaffID: 101, Floor: 1,
	}
}

func validSurgeonReg() SurgeonRegistration {
	return SurgeonRegistration{
		Name: "Fiona Clark", Age: 45, Mobile: "0467890123",
		Email: "fiona@example.com", Password: "Passw0rd6",
		StaffID: 201, Specialty: "General Surgeon",
	}
}

func TestRegisterPatient(t *testing.T) {
	d := NewDirectory()

	p, err := d.RegisterPatient(validPatientReg())
	if err != nil {
		t.Fatalf("RegisterPatient failed: %v", err)
	}
	if !p.Eligible || p.CheckedIn || p.HasRoom() {
		t.Errorf("new patient has wrong initial state: %+v", p)
	}
	if p.PasswordHash == "Passw0rd1" {
		t.Error("password must not be stored in plaintext")
	}

	if _, err := d.RegisterPatient(validPatientReg()); !HasCode(err, CodeConflict) {
		t.Errorf("duplicate email should conflict, got %v", err)
	}
}

func TestRegisterPatientValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PatientRegistration)
	}{
		{"digits in name", func(r *PatientRegistration) { r.Name = "Alice 2" }},
		{"age out of range", func(r *PatientRegistration) { r.Age = 101 }},
		{"short mobile", func(r *PatientRegistration) { r.Mobile = "041234567" }},
		{"mobile not starting with 0", func(r *PatientRegistration) { r.Mobile = "1412345678" }},
		{"bad email", func(r *PatientRegistration) { r.Email = "not-an-email" }},
		{"short password", func(r *PatientRegistration) { r.Password = "Pw0rd" }},
		{"password without digits", func(r *PatientRegistration) { r.Password = "Password" }},
		{"password without upper case", func(r *PatientRegistration) { r.Password = "passw0rd1" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDirectory()
			reg := validPatientReg()
			c.mutate(&reg)
			if _, err := d.RegisterPatient(reg); !HasCode(err, CodeInvalid) {
				t.Errorf("want INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestRegisterFloorManagerFloorConflict(t *testing.T) {
	d := NewDirectory()

	if _, err := d.RegisterFloorManager(validManagerReg()); err != nil {
		t.Fatalf("RegisterFloorManager failed: %v", err)
	}

	second := validManagerReg()
	second.Email = "evan@example.com"
	second.StaffID = 102
	if _, err := d.RegisterFloorManager(second); !HasCode(err, CodeConflict) {
		t.Errorf("second manager on floor 1 should conflict, got %v", err)
	}

	second.Floor = 2
	if _, err := d.RegisterFloorManager(second); err != nil {
		t.Errorf("manager on a free floor should register, got %v", err)
	}
	if !d.FloorAssigned(1) || !d.FloorAssigned(2) || d.FloorAssigned(3) {
		t.Error("floor assignment bookkeeping is wrong")
	}
}

func TestStaffIDUniqueAcrossRoles(t *testing.T) {
	d := NewDirectory()

	if _, err := d.RegisterFloorManager(validManagerReg()); err != nil {
		t.Fatalf("RegisterFloorManager failed: %v", err)
	}

	reg := validSurgeonReg()
	reg.StaffID = 101 // taken by the manager
	if _, err := d.RegisterSurgeon(reg); !HasCode(err, CodeConflict) {
		t.Errorf("staff ID shared with a manager should conflict, got %v", err)
	}
}

func TestSurgeonSpecialtyMustBeKnown(t *testing.T) {
	d := NewDirectory()
	reg := validSurgeonReg()
	reg.Specialty = "Dermatologist"
	if _, err := d.RegisterSurgeon(reg); !HasCode(err, CodeInvalid) {
		t.Errorf("unknown specialty should be invalid, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	d := NewDirectory()
	if _, err := d.RegisterPatient(validPatientReg()); err != nil {
		t.Fatalf("RegisterPatient failed: %v", err)
	}

	u, err := d.Login("Alice@Example.com", "Passw0rd1")
	if err != nil {
		t.Fatalf("login with mixed-case email failed: %v", err)
	}
	if u.Role() != RolePatient {
		t.Errorf("Role() = %v, want %v", u.Role(), RolePatient)
	}

	_, wrongPw := d.Login("alice@example.com", "nope")
	_, unknown := d.Login("nobody@example.com", "Passw0rd1")
	if !HasCode(wrongPw, CodeUnauthorized) || !HasCode(unknown, CodeUnauthorized) {
		t.Fatalf("both failures should be unauthorized, got %v and %v", wrongPw, unknown)
	}
	// Identical errors so login failures don't leak which emails exist.
	if wrongPw.Error() != unknown.Error() {
		t.Error("wrong-password and unknown-email errors should be indistinguishable")
	}
}

func TestChangePassword(t *testing.T) {
	d := NewDirectory()
	p, err := d.RegisterPatient(validPatientReg())
	if err != nil {
		t.Fatalf("RegisterPatient failed: %v", err)
	}

	if err := d.ChangePassword(p, "wrong", "NewPassw0rd"); !HasCode(err, CodeUnauthorized) {
		t.Errorf("wrong current password should be unauthorized, got %v", err)
	}
	if err := d.ChangePassword(p, "Passw0rd1", "NewPassw0rd"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if _, err := d.Login("alice@example.com", "NewPassw0rd"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := d.Login("alice@example.com", "Passw0rd1"); err == nil {
		t.Error("old password should no longer work")
	}
}

func TestPatientFilters(t *testing.T) {
	d := NewDirectory()

	fresh := NewPatient("Alice Nguyen", 34, "0412345678", "alice@example.com")
	awaiting := NewPatient("Bob Taylor", 58, "0423456789", "bob@example.com")
	awaiting.CheckedIn = true
	roomed := NewPatient("Carol Jones", 7, "0434567890", "carol@example.com")
	roomed.CheckedIn = true
	roomed.Room = 13
	lingering := NewPatient("Dave Smith", 44, "0445678901", "dave@example.com")
	lingering.Room = 21

	for _, p := range []*Patient{fresh, awaiting, roomed, lingering} {
		if err := d.addPatient(p); err != nil {
			t.Fatalf("addPatient %s failed: %v", p.Email, err)
		}
	}

	if got := d.PatientsAwaitingRoom(); len(got) != 1 || got[0] != awaiting {
		t.Errorf("PatientsAwaitingRoom = %v", got)
	}
	if got := d.PatientsReadyForSurgery(); len(got) != 1 || got[0] != roomed {
		t.Errorf("PatientsReadyForSurgery = %v", got)
	}
	if got := d.PatientsOccupyingRooms(); len(got) != 1 || got[0] != roomed {
		t.Errorf("PatientsOccupyingRooms = %v", got)
	}
	if got := d.PatientsWithLingeringRooms(); len(got) != 1 || got[0] != lingering {
		t.Errorf("PatientsWithLingeringRooms = %v", got)
	}
}

func TestBuildRegistry(t *testing.T) {
	d := NewDirectory()
	p := NewPatient("Carol Jones", 7, "0434567890", "carol@example.com")
	p.CheckedIn = true
	p.Room = 13
	if err := d.addPatient(p); err != nil {
		t.Fatalf("addPatient failed: %v", err)
	}

	reg, err := d.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	if !reg.Occupied(13) {
		t.Error("room 13 should be occupied after rebuild")
	}
	if reg.Occupied(14) {
		t.Error("room 14 should be vacant")
	}
}
