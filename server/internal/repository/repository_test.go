package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/server/internal/errs"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(sqlx.NewDb(db, "pgx"), zap.NewNop()), mock
}

func TestRepository_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Bob", "bob@mail.ru").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Bob", "bob@mail.ru"))

		got, err := r.CreateUser(ctx, model.User{Name: "Bob", Email: "bob@mail.ru"})
		require.NoError(t, err)
		assert.Equal(t, model.User{ID: 1, Name: "Bob", Email: "bob@mail.ru"}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

		_, err := r.CreateUser(ctx, model.User{Name: "Bob", Email: "bob@mail.ru"})
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})
}

func TestRepository_GetUser_NotFound(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT id, name, email FROM users WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	_, err := r.GetUser(context.Background(), 7)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM users`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, r.DeleteUser(ctx, 1))
	})

	t.Run("missing", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM users`).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, r.DeleteUser(ctx, 2), errs.ErrNotFound)
	})
}

func TestRepository_SearchItems(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT .+ FROM items WHERE available = \$1 AND \(name ILIKE \$2 OR description ILIKE \$3\) ORDER BY id LIMIT 10 OFFSET 0`).
		WithArgs(true, `%dr\_ll%`, `%dr\_ll%`).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(1, "Drill", "Power drill", true, 2, nil))

	page, _ := model.NewPage(0, 10)
	got, err := r.SearchItems(context.Background(), "dr_ll", page)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Drill", got[0].Name)
	assert.Nil(t, got[0].RequestID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBookings(t *testing.T) {
	t.Parallel()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "start_date", "end_date", "item_id", "booker_id", "status",
		"item_name", "item_owner_id", "booker_name", "booker_email"}

	tests := []struct {
		name  string
		f     model.BookingFilter
		query string
		args  []driver.Value
	}{
		{
			name:  "booker current",
			f:     model.BookingFilter{BookerID: 3, State: model.StateCurrent, Now: now},
			query: `WHERE b.booker_id = \$1 AND b.start_date < \$2 AND b.end_date > \$3 ORDER BY b.start_date DESC LIMIT 10 OFFSET 10`,
			args:  []driver.Value{int64(3), sqlmock.AnyArg(), sqlmock.AnyArg()},
		},
		{
			name:  "owner waiting",
			f:     model.BookingFilter{OwnerID: 4, State: model.StateWaiting, Now: now},
			query: `WHERE i.owner_id = \$1 AND b.status = \$2 ORDER BY b.start_date DESC`,
			args:  []driver.Value{int64(4), model.StatusWaiting},
		},
		{
			name:  "booker all",
			f:     model.BookingFilter{BookerID: 3, State: model.StateAll, Now: now},
			query: `WHERE b.booker_id = \$1 ORDER BY b.start_date DESC`,
			args:  []driver.Value{int64(3)},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, mock := newMockRepo(t)
			tt.f.Page = model.Page{From: 12, Size: 10}
			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(cols).
					AddRow(1, now.Add(-time.Hour), now.Add(time.Hour), 2, 3, "APPROVED", "Drill", 4, "Bob", "bob@mail.ru"))

			got, err := r.ListBookings(context.Background(), tt.f)
			require.NoError(t, err)
			require.Len(t, got, 1)
			resp := got[0].Response()
			assert.Equal(t, model.StatusApproved, resp.Status)
			assert.Equal(t, "Drill", resp.Item.Name)
			assert.Equal(t, now.Add(-time.Hour), resp.Start.Time)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LastBookings(t *testing.T) {
	t.Parallel()
	now := time.Now()

	r, mock := newMockRepo(t)
	got, err := r.LastBookings(context.Background(), nil, now)
	require.NoError(t, err)
	require.Empty(t, got)

	mock.ExpectQuery(`SELECT DISTINCT ON \(item_id\) id, booker_id, item_id FROM bookings .+ ORDER BY item_id, end_date DESC`).
		WithArgs(int64(1), int64(2), model.StatusApproved, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booker_id", "item_id"}).AddRow(5, 6, 1))

	got, err = r.LastBookings(context.Background(), []int64{1, 2}, now)
	require.NoError(t, err)
	assert.Equal(t, []model.BookingShort{{ID: 5, BookerID: 6, ItemID: 1}}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasFinishedBooking(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM bookings`).
		WithArgs(int64(3), int64(1), model.StatusApproved, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := r.HasFinishedBooking(context.Background(), 1, 3, time.Now())
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateComment(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`insert into comments`).
		WithArgs("nice", int64(1), int64(3), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "item_id", "author_id", "created", "author_name"}).
			AddRow(9, "nice", 1, 3, created, "Bob"))

	got, err := r.CreateComment(context.Background(), model.Comment{
		Text: "nice", ItemID: 1, AuthorID: 3, Created: model.NewDateTime(created),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.AuthorName)
	assert.Equal(t, int64(9), got.ID)
}

func TestRepository_ListOtherRequests(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM requests WHERE requestor_id <> \$1 ORDER BY created DESC, id DESC LIMIT 20 OFFSET 20`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(requestColumns).AddRow(4, "need a drill", 2, time.Now()))

	got, err := r.ListOtherRequests(context.Background(), 1, model.Page{From: 25, Size: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].RequestorID)
}
