package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage handles all database operations
type Storage struct {
	db *sql.DB
}

// NewStorage creates a new Storage instance, opening/creating the DB and initializing schema
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// initSchema creates tables and indices if they don't exist
func (s *Storage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS businesses (
		business_id INTEGER PRIMARY KEY AUTOINCREMENT,
		place_id TEXT UNIQUE,
		business_name TEXT NOT NULL,
		industry TEXT NOT NULL,
		city TEXT NOT NULL,
		site_url TEXT,
		phone TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(business_name, city)
	);

	CREATE INDEX IF NOT EXISTS idx_businesses_city ON businesses(city);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveBusiness checkpoints an accepted record. Rows that collide with an
// already-saved place ID or (name, city) pair are ignored, so replaying a
// stream never produces duplicates.
func (s *Storage) SaveBusiness(placeID string, rec BusinessRecord) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO businesses (place_id, business_name, industry, city, site_url, phone)
		VALUES (?, ?, ?, ?, ?, ?)
	`, nullString(placeID), rec.BusinessName, rec.Industry, rec.City, rec.SiteURL, rec.Phone)

	if err != nil {
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

// LoadBusinesses returns all checkpointed records in first-seen order,
// together with their place IDs (empty when the listing had none).
func (s *Storage) LoadBusinesses() ([]BusinessRecord, []string, error) {
	rows, err := s.db.Query(`
		SELECT IFNULL(place_id, ''), business_name, industry, city, IFNULL(site_url, ''), IFNULL(phone, ''), created_at
		FROM businesses
		ORDER BY business_id ASC
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load businesses: %w", err)
	}
	defer rows.Close()

	var records []BusinessRecord
	var placeIDs []string
	for rows.Next() {
		var rec BusinessRecord
		var placeID string
		if err := rows.Scan(&placeID, &rec.BusinessName, &rec.Industry, &rec.City, &rec.SiteURL, &rec.Phone, &rec.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan business: %w", err)
		}
		rec.CompanyName = rec.BusinessName
		records = append(records, rec)
		placeIDs = append(placeIDs, placeID)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating businesses: %w", err)
	}

	return records, placeIDs, nil
}

// CountBusinesses returns the number of checkpointed records
func (s *Storage) CountBusinesses() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
