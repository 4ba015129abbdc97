package main

import (
	"bufio"
	"fmt"
	"time"

	"hospital-management/hospital"
)

func managerMenu(sc *bufio.Scanner, svc *hospital.Service, m *hospital.FloorManager) {
	for {
		fmt.Println("\nFloor Manager Menu.")
		fmt.Println("Please choose from the menu below:")
		fmt.Println("1. Display my details")
		fmt.Println("2. Change password")
		fmt.Println("3. Assign room to patient")
		fmt.Println("4. Assign surgery to patient")
		fmt.Println("5. Unassign room")
		fmt.Println("6. Check out patient")
		fmt.Println("7. Log out")
		choice, ok := readLine(sc, "Please enter a choice between 1 and 7: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			printStaffDetails(&m.Staff)
			fmt.Printf("Floor: %d\n", m.Floor)
		case "2":
			changePassword(sc, svc, m)
		case "3":
			handleAssignRoom(sc, svc, m)
		case "4":
			handleAssignSurgery(sc, svc)
		case "5":
			handleUnassignRoom(sc, svc)
		case "6":
			handleCheckOutPatient(sc, svc)
		case "7":
			fmt.Printf("\nFloor manager %s has logged out.\n", m.Name)
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func printStaffDetails(s *hospital.Staff) {
	fmt.Println("\nYour details.")
	fmt.Printf("Name: %s\n", s.Name)
	fmt.Printf("Age: %d\n", s.Age)
	fmt.Printf("Mobile phone: %s\n", s.Mobile)
	fmt.Printf("Email: %s\n", s.Email)
	fmt.Printf("Staff ID: %d\n", s.StaffID)
}

// pickPatient shows the patients by name and returns the chosen one.
func pickPatient(sc *bufio.Scanner, patients []*hospital.Patient) (*hospital.Patient, bool) {
	fmt.Println("Please select your patient:")
	names := make([]string, len(patients))
	for i, p := range patients {
		names[i] = p.Name
	}
	idx, ok := pickIndex(sc, names)
	if !ok {
		return nil, false
	}
	return patients[idx], true
}

func handleAssignRoom(sc *bufio.Scanner, svc *hospital.Service, m *hospital.FloorManager) {
	candidates := svc.Directory().PatientsAwaitingRoom()
	if len(candidates) == 0 {
		fmt.Println("\nThere are no checked in patients.")
		return
	}
	if !svc.Rooms().HasAvailableOnFloor(m.Floor) {
		fmt.Printf("\nThere are no vacant rooms on floor %d.\n", m.Floor)
		return
	}

	fmt.Println()
	p, ok := pickPatient(sc, candidates)
	if !ok {
		return
	}

	for {
		local, ok := readInt(sc, fmt.Sprintf("Please enter your room (1-%d): ", hospital.RoomsPerFloor), 1, hospital.RoomsPerFloor)
		if !ok {
			return
		}
		err := svc.AssignRoom(p, m.Floor, local)
		if err == nil {
			fmt.Printf("\nPatient %s has been assigned room number %d on floor %d.\n", p.Name, local, m.Floor)
			return
		}
		if hospital.HasCode(err, hospital.CodeConflict) {
			fmt.Println("Room is occupied, please try again.")
			continue
		}
		fmt.Printf("Room assignment failed: %v\n", err)
		return
	}
}

func handleAssignSurgery(sc *bufio.Scanner, svc *hospital.Service) {
	candidates := svc.Directory().PatientsReadyForSurgery()
	if len(candidates) == 0 {
		fmt.Println("\nThere are no patients ready for surgery.")
		return
	}
	surgeons := svc.Directory().Surgeons()
	if len(surgeons) == 0 {
		fmt.Println("\nThere are no registered surgeons.")
		return
	}

	fmt.Println()
	p, ok := pickPatient(sc, candidates)
	if !ok {
		return
	}

	fmt.Println("Please select your surgeon:")
	names := make([]string, len(surgeons))
	for i, s := range surgeons {
		names[i] = fmt.Sprintf("%s (%s)", s.Name, s.Specialty)
	}
	idx, ok := pickIndex(sc, names)
	if !ok {
		return
	}
	surgeon := surgeons[idx]

	at, ok := readSurgeryTime(sc)
	if !ok {
		return
	}

	if err := svc.AssignSurgery(p, surgeon, at); err != nil {
		fmt.Printf("Surgery assignment failed: %v\n", err)
		return
	}
	fmt.Printf("\nSurgeon %s has been assigned to patient %s.\n", surgeon.Name, p.Name)
	fmt.Printf("Surgery will take place on %s.\n", at.Format(hospital.SurgeryTimeLayout))
}

// readSurgeryTime keeps prompting until the timestamp parses.
func readSurgeryTime(sc *bufio.Scanner) (time.Time, bool) {
	for {
		raw, ok := readLine(sc, "Please enter a date and time (e.g. 14:30 31/01/2024): ")
		if !ok {
			return time.Time{}, false
		}
		at, err := hospital.ParseSurgeryTime(raw)
		if err != nil {
			fmt.Println("Supplied value is not a valid date and time, please try again.")
			continue
		}
		return at, true
	}
}

func handleUnassignRoom(sc *bufio.Scanner, svc *hospital.Service) {
	candidates := svc.Directory().PatientsWithLingeringRooms()
	if len(candidates) == 0 {
		fmt.Println("\nThere are no patients ready to have their rooms unassigned.")
		return
	}

	fmt.Println()
	p, ok := pickPatient(sc, candidates)
	if !ok {
		return
	}

	room, floor := hospital.LocalRoom(p.Room), hospital.FloorOf(p.Room)
	if err := svc.UnassignRoom(p); err != nil {
		fmt.Printf("Room unassignment failed: %v\n", err)
		return
	}
	fmt.Printf("\nRoom number %d on floor %d is now unassigned.\n", room, floor)
}

func handleCheckOutPatient(sc *bufio.Scanner, svc *hospital.Service) {
	candidates := svc.Directory().PatientsOccupyingRooms()
	if len(candidates) == 0 {
		fmt.Println("\nThere are no patients ready to be checked out.")
		return
	}

	fmt.Println()
	p, ok := pickPatient(sc, candidates)
	if !ok {
		return
	}

	if err := svc.CheckOut(p); err != nil {
		if hospital.HasCode(err, hospital.CodeNotEligible) {
			fmt.Printf("\nPatient %s cannot be checked out before their surgery.\n", p.Name)
		} else {
			fmt.Printf("Check out failed: %v\n", err)
		}
		return
	}
	fmt.Printf("\nPatient %s has been checked out.\n", p.Name)
}

// ------------------ Surgeon menu ------------------

func surgeonMenu(sc *bufio.Scanner, svc *hospital.Service, s *hospital.Surgeon) {
	for {
		fmt.Println("\nSurgeon Menu.")
		fmt.Println("Please choose from the menu below:")
		fmt.Println("1. Display my details")
		fmt.Println("2. Change password")
		fmt.Println("3. See your list of patients")
		fmt.Println("4. See your schedule")
		fmt.Println("5. Perform surgery")
		fmt.Println("6. Log out")
		choice, ok := readLine(sc, "Please enter a choice between 1 and 6: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			printStaffDetails(&s.Staff)
			fmt.Printf("Speciality: %s\n", s.Specialty)
		case "2":
			changePassword(sc, svc, s)
		case "3":
			printSurgeonPatients(svc, s)
		case "4":
			printSurgeonSchedule(s)
		case "5":
			handlePerformSurgery(sc, svc, s)
		case "6":
			fmt.Printf("\nSurgeon %s has logged out.\n", s.Name)
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func printSurgeonPatients(svc *hospital.Service, s *hospital.Surgeon) {
	patients := svc.Directory().PatientsOfSurgeon(s)
	fmt.Println("\nYour Patients.")
	if len(patients) == 0 {
		fmt.Println("You do not have any patients right now.")
		return
	}
	for i, p := range patients {
		fmt.Printf("%d. %s\n", i+1, p.Name)
	}
}

func printSurgeonSchedule(s *hospital.Surgeon) {
	upcoming := s.OrderedUpcoming()
	fmt.Println("\nYour schedule.")
	if len(upcoming) == 0 {
		fmt.Println("You do not have any patients right now.")
		return
	}
	for _, p := range upcoming {
		fmt.Printf("Performing surgery on patient %s on %s\n", p.Name, p.SurgeryAt.Format(hospital.SurgeryTimeLayout))
	}
}

func handlePerformSurgery(sc *bufio.Scanner, svc *hospital.Service, s *hospital.Surgeon) {
	candidates := s.Upcoming()
	if len(candidates) == 0 {
		fmt.Println("\nYou do not have any patients right now.")
		return
	}

	fmt.Println()
	p, ok := pickPatient(sc, candidates)
	if !ok {
		return
	}

	if err := svc.PerformSurgery(s, p); err != nil {
		fmt.Printf("Surgery failed: %v\n", err)
		return
	}
	fmt.Printf("\nSurgery successfully completed on patient %s.\n", p.Name)
}
