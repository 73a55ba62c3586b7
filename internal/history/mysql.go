package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"ctr/internal/config"
	"ctr/internal/domain"
)

// MySQLRecorder stores run history in a MySQL database
type MySQLRecorder struct {
	db *sql.DB
}

// Open connects to the history database and ensures the database and its
// schema exist. Connection settings come from the project .env file or the
// environment, with local-development defaults.
func Open(cfg *config.Config) (*MySQLRecorder, error) {
	// Load .env file from project directory
	envPath := filepath.Join(cfg.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	dbName := envOrDefault("DB_DATABASE", "ctr")
	if err := ensureDatabase(dbName); err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn(dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	recorder := &MySQLRecorder{db: db}
	if err := recorder.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return recorder, nil
}

// dsn builds the connection string for the given database. An empty name
// connects at server level.
func dsn(dbName string) string {
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	user := envOrDefault("DB_USERNAME", "root")
	password := os.Getenv("DB_PASSWORD")
	if dbName == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/", user, password, host, port)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, password, host, port, dbName)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ensureDatabase creates the history database if it does not exist yet.
func ensureDatabase(dbName string) error {
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	// Connect to MySQL server (without specifying database)
	db, err := sql.Open("mysql", dsn(""))
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	return nil
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return false
		}
	}
	return true
}

// ensureSchema creates the run history table if it does not exist yet.
func (r *MySQLRecorder) ensureSchema() error {
	query := `CREATE TABLE IF NOT EXISTS run_history (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_cases INT NOT NULL,
		passed INT NOT NULL,
		failed INT NOT NULL,
		errored INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// Record inserts one run summary row.
func (r *MySQLRecorder) Record(meta domain.ReportMeta) error {
	query := "INSERT INTO run_history (total_cases, passed, failed, errored, duration_seconds) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.Exec(query, meta.TotalCases, meta.Passed, meta.Failed, meta.Errored, meta.DurationSeconds); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent run summaries, newest first.
func (r *MySQLRecorder) Recent(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	query := "SELECT id, total_cases, passed, failed, errored, duration_seconds, created_at FROM run_history ORDER BY id DESC LIMIT ?"
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		if err := rows.Scan(&record.ID, &record.TotalCases, &record.Passed, &record.Failed, &record.Errored, &record.DurationSeconds, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run history: %w", err)
	}
	return records, nil
}

// Close releases the database connection.
func (r *MySQLRecorder) Close() error {
	return r.db.Close()
}
