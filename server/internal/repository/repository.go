package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/server/internal/errs"
)

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) *repository {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
	requestsTableName = `requests`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapErr translates driver errors into errs sentinels.
func mapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(errs.ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrapf(errs.ErrAlreadyExists, "%s: %s", op, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrapf(errs.ErrNotFound, "%s: %s", op, pgErr.ConstraintName)
		}
	}
	return errors.Wrap(err, op)
}

func affected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return errors.Wrap(errs.ErrNotFound, op)
	}
	return nil
}
