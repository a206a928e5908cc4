// Package repo stores engineer accounts in Postgres.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

var ErrNotFound = errors.New("repo: user not found")

type User struct {
	ID           int
	Login        string
	Email        string
	PasswordHash string
}

type UserStore interface {
	Create(ctx context.Context, login, email, passwordHash string) (int, error)
	ByLogin(ctx context.Context, login string) (User, error)
}

// Open connects to Postgres, forcing sslmode=require unless the
// connection string already picks one.
func Open(connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr += "?sslmode=require"
		} else {
			connStr += " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Create(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := p.db.QueryRowContext(ctx, query, login, email, passwordHash).Scan(&id)
	return id, err
}

func (p *Postgres) ByLogin(ctx context.Context, login string) (User, error) {
	u := User{Login: login}
	query := "SELECT id, email, password FROM users WHERE login=$1"
	err := p.db.QueryRowContext(ctx, query, login).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
