package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates an empty database with the development registry:
// the personnel crew and vehicle fleet the intent layer was tuned
// against, all idle. Seeding a non-empty registry is an error.
func SeedFixtures(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM personnel").Scan(&count); err != nil {
		return fmt.Errorf("seed personnel: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("registry already has %d personnel, refusing to seed", count)
	}

	personnel := []string{
		"Ahmet Yılmaz",
		"Mehmet Demir",
		"Ali Baydemir",
		"Murat Aslantaş",
		"Ayşe Kaya",
	}
	for i, name := range personnel {
		if _, err := database.Exec(
			"INSERT INTO personnel (name, status, position) VALUES (?, 'idle', ?)",
			name, i,
		); err != nil {
			return fmt.Errorf("seed personnel: %w", err)
		}
	}

	vehicles := []string{
		"Vinç 1",
		"Vinç 2",
		"Kamyon 3",
		"Forklift 2",
	}
	for i, name := range vehicles {
		if _, err := database.Exec(
			"INSERT INTO vehicles (name, status, position) VALUES (?, 'idle', ?)",
			name, i,
		); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
	}

	return nil
}
