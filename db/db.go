package db

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const LockTimeout = 4000
const StatementTimeout = 30000

func Connect() (*sqlx.DB, error) {
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		if os.Getenv("DB_HOST") != "" &&
			os.Getenv("DB_PORT") != "" &&
			os.Getenv("DB_USER") != "" &&
			os.Getenv("DB_PASSWORD") != "" &&
			os.Getenv("DB_NAME") != "" {
			encodedPassword := url.QueryEscape(os.Getenv("DB_PASSWORD"))

			dbUrl = "postgres://" + os.Getenv("DB_USER") + ":" + encodedPassword + "@" + os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT") + "/" + os.Getenv("DB_NAME")
		}

		if dbUrl == "" {
			return nil, errors.New("DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, and DB_NAME environment variables must be set")
		}
	}

	if strings.Contains(dbUrl, "?") {
		dbUrl += fmt.Sprintf("&statement_timeout=%d&lock_timeout=%d&timezone=UTC", StatementTimeout, LockTimeout)
	} else {
		dbUrl += fmt.Sprintf("?statement_timeout=%d&lock_timeout=%d&timezone=UTC", StatementTimeout, LockTimeout)
	}

	conn, err := sqlx.Connect("postgres", dbUrl)
	if err != nil {
		return nil, err
	}

	log.Println("connected to database")

	if os.Getenv("GOENV") == "production" {
		conn.SetMaxOpenConns(50)
		conn.SetMaxIdleConns(20)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
	}

	return conn, nil
}

func MigrationsUp(conn *sqlx.DB, dir string) error {
	if conn == nil {
		return errors.New("db not initialized")
	}

	driver, err := migratepg.WithInstance(conn.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("error creating postgres driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("error creating migration instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error running migrations: %v", err)
	}

	log.Println("ran database migrations")

	return nil
}

// Store wraps the database connection. Handlers depend on it through an
// interface so tests can swap in a double.
type Store struct {
	conn *sqlx.DB
}

func NewStore(conn *sqlx.DB) *Store {
	return &Store{conn: conn}
}
