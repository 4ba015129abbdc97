package main

import (
	"bufio"
	"fmt"
	"os"

	"hospital-management/hospital"
)

func runMenu(svc *hospital.Service) {
	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("=================================")
	fmt.Println("Welcome to Gardens Point Hospital")
	fmt.Println("=================================")

	for {
		fmt.Println("\nPlease choose from the menu below:")
		fmt.Println("1. Login as a registered user")
		fmt.Println("2. Register as a new user")
		fmt.Println("3. Exit")
		choice, ok := readLine(sc, "Please enter a choice between 1 and 3: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			handleLogin(sc, svc)
		case "2":
			handleRegister(sc, svc)
		case "3":
			fmt.Println("\nGoodbye. Please stay safe.")
			return
		default:
			fmt.Println("Invalid menu option, please try again.")
		}
	}
}

func handleLogin(sc *bufio.Scanner, svc *hospital.Service) {
	email, ok := readLine(sc, "\nPlease enter in your email: ")
	if !ok {
		return
	}
	password, err := readPassword("Please enter in your password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	user, err := svc.Login(email, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}
	fmt.Printf("\nHello %s welcome back.\n", user.Profile().Name)

	switch u := user.(type) {
	case *hospital.Patient:
		patientMenu(sc, svc, u)
	case *hospital.FloorManager:
		managerMenu(sc, svc, u)
	case *hospital.Surgeon:
		surgeonMenu(sc, svc, u)
	}
}

func handleRegister(sc *bufio.Scanner, svc *hospital.Service) {
	fmt.Println("\nRegister as which type of user:")
	fmt.Println("1. Patient")
	fmt.Println("2. Staff")
	fmt.Println("3. Return to the first menu")
	choice, ok := readLine(sc, "Please enter a choice between 1 and 3: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		handleRegisterPatient(sc, svc)
	case "2":
		handleRegisterStaff(sc, svc)
	case "3":
		return
	default:
		fmt.Println("Invalid menu option, please try again.")
	}
}

// readIdentity collects the fields every registration shares.
func readIdentity(sc *bufio.Scanner, minAge, maxAge int) (name string, age int, mobile, email, password string, ok bool) {
	if name, ok = readLine(sc, "Please enter in your name: "); !ok {
		return
	}
	if age, ok = readInt(sc, "Please enter in your age: ", minAge, maxAge); !ok {
		return
	}
	if mobile, ok = readLine(sc, "Please enter in your mobile number: "); !ok {
		return
	}
	if email, ok = readLine(sc, "Please enter in your email: "); !ok {
		return
	}
	var err error
	if password, err = readPassword("Please enter in your password: "); err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		ok = false
		return
	}
	ok = true
	return
}

func handleRegisterPatient(sc *bufio.Scanner, svc *hospital.Service) {
	fmt.Println("\nRegistering as a patient.")
	name, age, mobile, email, password, ok := readIdentity(sc, 0, 100)
	if !ok {
		return
	}

	p, err := svc.RegisterPatient(hospital.PatientRegistration{
		Name: name, Age: age, Mobile: mobile, Email: email, Password: password,
	})
	if err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return
	}
	fmt.Printf("\n%s is registered as a patient.\n", p.Name)
}

func handleRegisterStaff(sc *bufio.Scanner, svc *hospital.Service) {
	fmt.Println("\nRegister as which type of staff:")
	fmt.Println("1. Floor manager")
	fmt.Println("2. Surgeon")
	fmt.Println("3. Return to the first menu")
	choice, ok := readLine(sc, "Please enter a choice between 1 and 3: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		handleRegisterFloorManager(sc, svc)
	case "2":
		handleRegisterSurgeon(sc, svc)
	case "3":
		return
	default:
		fmt.Println("Invalid menu option, please try again.")
	}
}

func handleRegisterFloorManager(sc *bufio.Scanner, svc *hospital.Service) {
	if svc.Directory().AllFloorsAssigned() {
		fmt.Println("\nAll floors are assigned.")
		return
	}

	fmt.Println("\nRegistering as a floor manager.")
	name, age, mobile, email, password, ok := readIdentity(sc, 21, 70)
	if !ok {
		return
	}
	staffID, ok := readInt(sc, "Please enter in your staff ID: ", 100, 999)
	if !ok {
		return
	}
	floor, ok := readInt(sc, "Please enter in your floor number: ", 1, hospital.NumFloors)
	if !ok {
		return
	}

	m, err := svc.RegisterFloorManager(hospital.FloorManagerRegistration{
		Name: name, Age: age, Mobile: mobile, Email: email, Password: password,
		StaffID: staffID, Floor: floor,
	})
	if err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return
	}
	fmt.Printf("\n%s is registered as a floor manager.\n", m.Name)
}

func handleRegisterSurgeon(sc *bufio.Scanner, svc *hospital.Service) {
	fmt.Println("\nRegistering as a surgeon.")
	name, age, mobile, email, password, ok := readIdentity(sc, 30, 75)
	if !ok {
		return
	}
	staffID, ok := readInt(sc, "Please enter in your staff ID: ", 100, 999)
	if !ok {
		return
	}

	fmt.Println("Please choose your speciality:")
	idx, ok := pickIndex(sc, hospital.Specialties)
	if !ok {
		return
	}

	s, err := svc.RegisterSurgeon(hospital.SurgeonRegistration{
		Name: name, Age: age, Mobile: mobile, Email: email, Password: password,
		StaffID: staffID, Specialty: hospital.Specialties[idx],
	})
	if err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return
	}
	fmt.Printf("\n%s is registered as a surgeon.\n", s.Name)
}

// ------------------ Patient menu ------------------

func patientMenu(sc *bufio.Scanner, svc *hospital.Service, p *hospital.Patient) {
	for {
		fmt.Println("\nPatient Menu.")
		fmt.Println("Please choose from the menu below:")
		fmt.Println("1. Display my details")
		fmt.Println("2. Change password")
		if p.CheckedIn {
			fmt.Println("3. Check out")
		} else {
			fmt.Println("3. Check in")
		}
		fmt.Println("4. See room")
		fmt.Println("5. See surgeon")
		fmt.Println("6. See surgery date and time")
		fmt.Println("7. Log out")
		choice, ok := readLine(sc, "Please enter a choice between 1 and 7: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			printPatientDetails(p)
		case "2":
			changePassword(sc, svc, p)
		case "3":
			if p.CheckedIn {
				if err := svc.CheckOut(p); err != nil {
					fmt.Println("\nYou are unable to check out at this time.")
				} else {
					fmt.Printf("\nPatient %s has been checked out.\n", p.Name)
				}
			} else {
				if err := svc.CheckIn(p); err != nil {
					fmt.Println("\nYou are unable to check in at this time.")
				} else {
					fmt.Printf("\nPatient %s has been checked in.\n", p.Name)
				}
			}
		case "4":
			printPatientRoom(p)
		case "5":
			if p.Surgeon != "" {
				fmt.Printf("Your surgeon is %s.\n", p.Surgeon)
			} else {
				fmt.Println("You do not have an assigned surgeon.")
			}
		case "6":
			if p.SurgeryScheduled() {
				fmt.Printf("Your surgery time is %s.\n", p.SurgeryAt.Format(hospital.SurgeryTimeLayout))
			} else {
				fmt.Println("You do not have assigned surgery.")
			}
		case "7":
			fmt.Printf("\nPatient %s has logged out.\n", p.Name)
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func printPatientDetails(p *hospital.Patient) {
	fmt.Println("\nYour details.")
	fmt.Printf("Name: %s\n", p.Name)
	fmt.Printf("Age: %d\n", p.Age)
	fmt.Printf("Mobile phone: %s\n", p.Mobile)
	fmt.Printf("Email: %s\n", p.Email)
	if p.HasRoom() {
		fmt.Printf("Room: %d on floor %d\n", hospital.LocalRoom(p.Room), hospital.FloorOf(p.Room))
	}
	if p.Surgeon != "" {
		fmt.Printf("Surgeon: %s\n", p.Surgeon)
	}
	if p.SurgeryScheduled() {
		fmt.Printf("Surgery Date and Time: %s\n", p.SurgeryAt.Format(hospital.SurgeryTimeLayout))
	}
}

func printPatientRoom(p *hospital.Patient) {
	if p.HasRoom() {
		fmt.Printf("\nYour room is number %d on floor %d.\n", hospital.LocalRoom(p.Room), hospital.FloorOf(p.Room))
	} else {
		fmt.Println("You do not have an assigned room.")
	}
}

func changePassword(sc *bufio.Scanner, svc *hospital.Service, u hospital.User) {
	current, err := readPassword("Enter your current password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	updated, err := readPassword("Please enter your new password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if err := svc.ChangePassword(u, current, updated); err != nil {
		fmt.Printf("Password change failed: %v\n", err)
		return
	}
	fmt.Println("Password has been changed.")
}
