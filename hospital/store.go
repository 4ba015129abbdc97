package hospital

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists the full hospital state in SQLite. The in-memory
// directory stays the source of truth during a session; Save writes a
// complete snapshot and Load rebuilds the directory from the last one.
// Room occupancy is not stored at all — it is derived from the patients'
// assignments on load.
type Store struct {
	db  *sql.DB
	log *slog.Logger

	insertUserStmt    *sql.Stmt
	insertSurgeryStmt *sql.Stmt
}

// OpenStore opens (or creates) the database at dbPath, applies schema
// migrations, and prepares common statements.
func OpenStore(dbPath string, log *slog.Logger) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	st := &Store{db: db, log: log}
	if err := st.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close releases prepared statements and closes the DB.
func (st *Store) Close() error {
	if st.insertUserStmt != nil {
		st.insertUserStmt.Close()
	}
	if st.insertSurgeryStmt != nil {
		st.insertSurgeryStmt.Close()
	}
	return st.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            kind TEXT NOT NULL,
            name TEXT NOT NULL,
            age INTEGER NOT NULL,
            mobile TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE COLLATE NOCASE,
            password_hash TEXT NOT NULL,
            staff_id INTEGER,
            specialty TEXT,
            floor INTEGER,
            room INTEGER NOT NULL DEFAULT 0,
            surgeon TEXT NOT NULL DEFAULT '',
            surgery_at TEXT NOT NULL DEFAULT '',
            checked_in INTEGER NOT NULL DEFAULT 0,
            has_surgery INTEGER NOT NULL DEFAULT 0,
            eligible INTEGER NOT NULL DEFAULT 1
        );`,
		// Queue rows keep their autoincrement ids so assignment order
		// survives a reload.
		`CREATE TABLE IF NOT EXISTS surgeries (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            surgeon_staff_id INTEGER NOT NULL,
            patient_email TEXT NOT NULL,
            UNIQUE(surgeon_staff_id, patient_email)
        );`,
		`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt, schemaVersion); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (st *Store) prepareStatements() error {
	var err error
	if st.insertUserStmt, err = st.db.Prepare(`INSERT INTO users
        (kind,name,age,mobile,email,password_hash,staff_id,specialty,floor,room,surgeon,surgery_at,checked_in,has_surgery,eligible)
        VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`); err != nil {
		return err
	}
	if st.insertSurgeryStmt, err = st.db.Prepare(`INSERT INTO surgeries(surgeon_staff_id,patient_email) VALUES(?,?)`); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Snapshot save / load
// ---------------------------------------------------------------------------

// Save writes the directory as a complete snapshot in one transaction.
func (st *Store) Save(d *Directory) error {
	started := time.Now()

	tx, err := st.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM surgeries`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM users`); err != nil {
		return err
	}

	insertUser := tx.Stmt(st.insertUserStmt)
	insertSurgery := tx.Stmt(st.insertSurgeryStmt)

	for _, p := range d.Patients() {
		surgeryAt := ""
		if p.SurgeryScheduled() {
			surgeryAt = p.SurgeryAt.Format(SurgeryTimeLayout)
		}
		if _, err := insertUser.Exec(string(RolePatient), p.Name, p.Age, p.Mobile, p.Email, p.PasswordHash,
			nil, nil, nil, p.Room, p.Surgeon, surgeryAt, p.CheckedIn, p.HasSurgery, p.Eligible); err != nil {
			return fmt.Errorf("save patient %s: %w", p.Email, err)
		}
	}
	for _, m := range d.FloorManagers() {
		if _, err := insertUser.Exec(string(RoleFloorManager), m.Name, m.Age, m.Mobile, m.Email, m.PasswordHash,
			m.StaffID, nil, m.Floor, 0, "", "", false, false, true); err != nil {
			return fmt.Errorf("save floor manager %s: %w", m.Email, err)
		}
	}
	for _, s := range d.Surgeons() {
		if _, err := insertUser.Exec(string(RoleSurgeon), s.Name, s.Age, s.Mobile, s.Email, s.PasswordHash,
			s.StaffID, s.Specialty, nil, 0, "", "", false, false, true); err != nil {
			return fmt.Errorf("save surgeon %s: %w", s.Email, err)
		}
		for _, p := range s.Upcoming() {
			if _, err := insertSurgery.Exec(s.StaffID, p.Key()); err != nil {
				return fmt.Errorf("save queue entry %s/%s: %w", s.Email, p.Email, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	st.log.Debug("state saved", "elapsed", time.Since(started))
	return nil
}

// Load rebuilds the directory from the last snapshot. An empty database
// yields an empty directory.
func (st *Store) Load() (*Directory, error) {
	d := NewDirectory()

	rows, err := st.db.Query(`SELECT kind,name,age,mobile,email,password_hash,
        COALESCE(staff_id,0),COALESCE(specialty,''),COALESCE(floor,0),
        room,surgeon,surgery_at,checked_in,has_surgery,eligible
        FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind, name, mobile, email, hash, specialty, surgeon, surgeryAt string
			age, staffID, floor, room                                      int
			checkedIn, hasSurgery, eligible                                bool
		)
		if err := rows.Scan(&kind, &name, &age, &mobile, &email, &hash, &staffID, &specialty, &floor,
			&room, &surgeon, &surgeryAt, &checkedIn, &hasSurgery, &eligible); err != nil {
			return nil, err
		}

		switch Role(kind) {
		case RolePatient:
			p := NewPatient(name, age, mobile, email)
			p.PasswordHash = hash
			p.Room = room
			p.Surgeon = surgeon
			p.CheckedIn = checkedIn
			p.HasSurgery = hasSurgery
			p.Eligible = eligible
			if surgeryAt != "" {
				at, err := ParseSurgeryTime(surgeryAt)
				if err != nil {
					return nil, fmt.Errorf("patient %s: malformed surgery time %q: %w", email, surgeryAt, err)
				}
				p.SurgeryAt = at
			}
			if err := d.addPatient(p); err != nil {
				return nil, err
			}
		case RoleFloorManager:
			m := NewFloorManager(name, age, mobile, email, staffID, floor)
			m.PasswordHash = hash
			if err := d.addFloorManager(m); err != nil {
				return nil, err
			}
		case RoleSurgeon:
			s := NewSurgeon(name, age, mobile, email, staffID, specialty)
			s.PasswordHash = hash
			if err := d.addSurgeon(s); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown user kind %q for %s", kind, email)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := st.loadQueues(d); err != nil {
		return nil, err
	}

	st.log.Debug("state loaded",
		"patients", len(d.Patients()),
		"floor_managers", len(d.FloorManagers()),
		"surgeons", len(d.Surgeons()))
	return d, nil
}

func (st *Store) loadQueues(d *Directory) error {
	rows, err := st.db.Query(`SELECT surgeon_staff_id, patient_email FROM surgeries ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var staffID int
		var email string
		if err := rows.Scan(&staffID, &email); err != nil {
			return err
		}
		s, err := d.SurgeonByStaffID(staffID)
		if err != nil {
			return fmt.Errorf("queue entry for unknown surgeon %d: %w", staffID, err)
		}
		p, err := d.PatientByEmail(email)
		if err != nil {
			return fmt.Errorf("queue entry for unknown patient %s: %w", email, err)
		}
		s.AddUpcoming(p)
	}
	return rows.Err()
}
