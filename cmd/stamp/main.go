// Command stamp prepares a freshly built mcpdict.db for packaging: it
// materializes the info ROWIDs into info_rowid and writes the
// build_version marker. Any missing upstream table aborts the build
// with a non-zero exit; an unstamped artifact must never ship.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func main() {
	var (
		command = flag.String("command", "up", "Stamp command: up, status, version")
		dbFlag  = flag.String("db", "", "Path to the database (overrides DB_PATH)")
	)
	flag.Parse()

	loadEnvFiles()

	path := dbPath()
	if *dbFlag != "" {
		path = *dbFlag
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}
	defer db.Close()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	dir := migrationsDir()

	switch *command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			log.Fatalf("Failed to stamp database: %v", err)
		}
		if err := verify(db); err != nil {
			log.Fatalf("Stamped database failed verification: %v", err)
		}
		version, err := stampedVersion(db)
		if err != nil {
			log.Fatalf("Failed to read stamped version: %v", err)
		}
		fmt.Printf("Database stamped with version %s\n", version)
	case "status":
		if err := goose.Status(db, dir); err != nil {
			log.Fatalf("Failed to check stamp status: %v", err)
		}
	case "version":
		version, err := stampedVersion(db)
		if err != nil {
			log.Fatalf("Failed to read stamped version: %v", err)
		}
		fmt.Println(version)
	default:
		log.Fatalf("Unknown command: %s. Use: up, status, version", *command)
	}
}

// verify checks the tables the query service depends on. The langs FTS
// index is produced entirely by the upstream build, so its absence
// means the build itself is broken.
func verify(db *sql.DB) error {
	for _, table := range []string{"info", "langs", "info_rowid", "build_version"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE name = ?`, table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("required table %s is missing", table)
		}
		if err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
	}
	return nil
}

func stampedVersion(db *sql.DB) (string, error) {
	var version string
	err := db.QueryRow(`SELECT CAST(version AS TEXT) FROM build_version LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("build_version table is empty")
	}
	if err != nil {
		return "", err
	}
	return version, nil
}
