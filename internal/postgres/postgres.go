package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/twitsprout/tools/postgres"
)

type Config postgres.Config

// Postgres represents the type to interact with the PostgreSQL database.
type Postgres struct {
	sqldb *sqlx.DB
	db    *postgres.DB
	newID func() string
}

type QueryValues struct {
	query string
	args  []interface{}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// New creates a new Postgres store.
func New(c Config) (*Postgres, error) {
	db, err := postgres.NewDB(postgres.Config(c))
	if err != nil {
		return nil, err
	}
	sqldb := sqlx.NewDb(db.SQLDB(), "postgres")
	return &Postgres{sqldb: sqldb, db: db, newID: uuid.NewString}, nil
}

// Close closes the cached statements and the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
