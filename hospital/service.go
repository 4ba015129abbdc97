package hospital

import (
	"io"
	"log/slog"
	"time"
)

// Service is a thin facade over the store, directory and coordinator,
// keeping CLI code simple. State is loaded once at startup; Close writes
// the final snapshot.
type Service struct {
	cfg   Config
	log   *slog.Logger
	store *Store
	dir   *Directory
	rooms *RoomRegistry
	coord *Coordinator
}

// NewService opens the store at cfg.DBPath and rebuilds the in-memory
// state from the last snapshot.
func NewService(cfg Config, log *slog.Logger) (*Service, error) {
	store, err := OpenStore(cfg.DBPath, log)
	if err != nil {
		return nil, err
	}
	dir, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}
	rooms, err := dir.BuildRegistry()
	if err != nil {
		store.Close()
		return nil, err
	}
	return &Service{
		cfg:   cfg,
		log:   log,
		store: store,
		dir:   dir,
		rooms: rooms,
		coord: NewCoordinator(rooms, dir),
	}, nil
}

// Save snapshots the current state.
func (s *Service) Save() error { return s.store.Save(s.dir) }

// Close saves and closes the underlying store.
func (s *Service) Close() error {
	if err := s.Save(); err != nil {
		s.store.Close()
		return err
	}
	return s.store.Close()
}

// ------------------ Registration & authentication ------------------

func (s *Service) RegisterPatient(reg PatientRegistration) (*Patient, error) {
	return s.dir.RegisterPatient(reg)
}

func (s *Service) RegisterFloorManager(reg FloorManagerRegistration) (*FloorManager, error) {
	return s.dir.RegisterFloorManager(reg)
}

func (s *Service) RegisterSurgeon(reg SurgeonRegistration) (*Surgeon, error) {
	return s.dir.RegisterSurgeon(reg)
}

func (s *Service) Login(email, password string) (User, error) {
	return s.dir.Login(email, password)
}

func (s *Service) ChangePassword(u User, current, updated string) error {
	return s.dir.ChangePassword(u, current, updated)
}

// ------------------ Allocation operations ------------------

func (s *Service) CheckIn(p *Patient) error { return s.coord.CheckInPatient(p) }

func (s *Service) AssignRoom(p *Patient, floor, localRoom int) error {
	return s.coord.AssignRoomToPatient(p, floor, localRoom)
}

func (s *Service) AssignSurgery(p *Patient, surgeon *Surgeon, at time.Time) error {
	return s.coord.AssignSurgeryToPatient(p, surgeon, at)
}

func (s *Service) PerformSurgery(surgeon *Surgeon, p *Patient) error {
	return s.coord.PerformSurgery(surgeon, p)
}

func (s *Service) UnassignRoom(p *Patient) error { return s.coord.UnassignRoom(p) }

func (s *Service) CheckOut(p *Patient) error { return s.coord.CheckOutPatient(p) }

// ------------------ Read access for the menus ------------------

func (s *Service) Directory() *Directory { return s.dir }
func (s *Service) Rooms() *RoomRegistry  { return s.rooms }

// ------------------ Legacy records ------------------

// ExportRecords writes the legacy one-entity-per-line dump.
func (s *Service) ExportRecords(w io.Writer) error {
	return WriteRecords(w, s.dir)
}

// ImportRecords replaces the entire state with the parsed dump and
// snapshots it immediately.
func (s *Service) ImportRecords(r io.Reader) error {
	dir, err := ReadRecords(r)
	if err != nil {
		return err
	}
	rooms, err := dir.BuildRegistry()
	if err != nil {
		return err
	}
	s.dir = dir
	s.rooms = rooms
	s.coord = NewCoordinator(rooms, dir)
	return s.Save()
}
