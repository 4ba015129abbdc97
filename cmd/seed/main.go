// Command seed populates a database with demo accounts so the menus can
// be exercised without registering everyone by hand.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"hospital-management/hospital"
)

func main() {
	dbPath := flag.String("db", "hospital.db", "path to the sqlite database")
	flag.Parse()

	cfg := hospital.Config{DBPath: *dbPath, LogLevel: "info", LogFormat: "text"}
	svc, err := hospital.NewService(cfg, hospital.NewLogger(cfg, os.Stderr))
	if err != nil {
		log.Fatalf("open service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.Fatalf("save seed data: %v", err)
		}
	}()

	patients := []hospital.PatientRegistration{
		{Name: "Alice Nguyen", Age: 34, Mobile: "0412345678", Email: "alice@example.com", Password: "Passw0rd1"},
		{Name: "Bob Taylor", Age: 58, Mobile: "0423456789", Email: "bob@example.com", Password: "Passw0rd2"},
		{Name: "Carol Jones", Age: 7, Mobile: "0434567890", Email: "carol@example.com", Password: "Passw0rd3"},
	}
	managers := []hospital.FloorManagerRegistration{
		{Name: "Dana White", Age: 41, Mobile: "0445678901", Email: "dana@example.com", Password: "Passw0rd4", StaffID: 101, Floor: 1},
		{Name: "Evan Brown", Age: 55, Mobile: "0456789012", Email: "evan@example.com", Password: "Passw0rd5", StaffID: 102, Floor: 2},
	}
	surgeons := []hospital.SurgeonRegistration{
		{Name: "Fiona Clark", Age: 45, Mobile: "0467890123", Email: "fiona@example.com", Password: "Passw0rd6", StaffID: 201, Specialty: "General Surgeon"},
		{Name: "George Hall", Age: 61, Mobile: "0478901234", Email: "george@example.com", Password: "Passw0rd7", StaffID: 202, Specialty: "Neurosurgeon"},
	}

	seeded := 0
	for _, reg := range patients {
		if _, err := svc.RegisterPatient(reg); err != nil {
			log.Printf("skip patient %s: %v", reg.Email, err)
			continue
		}
		seeded++
	}
	for _, reg := range managers {
		if _, err := svc.RegisterFloorManager(reg); err != nil {
			log.Printf("skip floor manager %s: %v", reg.Email, err)
			continue
		}
		seeded++
	}
	for _, reg := range surgeons {
		if _, err := svc.RegisterSurgeon(reg); err != nil {
			log.Printf("skip surgeon %s: %v", reg.Email, err)
			continue
		}
		seeded++
	}

	fmt.Printf("Seeded %d accounts into %s\n", seeded, *dbPath)
}
