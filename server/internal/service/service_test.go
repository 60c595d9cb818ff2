package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/server/internal/errs"
	"github.com/Astemirdum/shareit/server/internal/model"
	mock_service "github.com/Astemirdum/shareit/server/internal/service/mocks"
)

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	repo   *mock_service.MockRepository
	cache  *mock_service.MockUserCache
	events *mock_service.MockEventPublisher
}

func newTestService(t *testing.T) (*Service, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:   mock_service.NewMockRepository(ctrl),
		cache:  mock_service.NewMockUserCache(ctrl),
		events: mock_service.NewMockEventPublisher(ctrl),
	}
	s := NewService(m.repo, m.cache, m.events, zap.NewNop())
	s.now = func() time.Time { return now }
	return s, m
}

// expectUser makes the user resolvable through a cache miss.
func (m mocks) expectUser(u model.User) {
	m.cache.EXPECT().Get(gomock.Any(), u.ID).Return(model.User{}, false, nil)
	m.repo.EXPECT().GetUser(gomock.Any(), u.ID).Return(u, nil)
	m.cache.EXPECT().Set(gomock.Any(), u).Return(nil)
}

func (m mocks) expectMissingUser(id int64) {
	m.cache.EXPECT().Get(gomock.Any(), id).Return(model.User{}, false, nil)
	m.repo.EXPECT().GetUser(gomock.Any(), id).Return(model.User{}, errs.ErrNotFound)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func dt(t time.Time) *model.DateTime {
	d := model.NewDateTime(t)
	return &d
}

var (
	owner  = model.User{ID: 1, Name: "Owner", Email: "owner@mail.ru"}
	booker = model.User{ID: 2, Name: "Booker", Email: "booker@mail.ru"}
	drill  = model.Item{ID: 10, Name: "Drill", Description: "Power drill", Available: true, OwnerID: owner.ID}
)

func TestService_GetUser_CacheHit(t *testing.T) {
	s, m := newTestService(t)
	m.cache.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, true, nil)

	got, err := s.GetUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Equal(t, owner, got)
}

func TestService_GetUser_CacheErrorFallsBackToRepo(t *testing.T) {
	s, m := newTestService(t)
	m.cache.EXPECT().Get(gomock.Any(), owner.ID).Return(model.User{}, false, errors.New("redis down"))
	m.repo.EXPECT().GetUser(gomock.Any(), owner.ID).Return(owner, nil)
	m.cache.EXPECT().Set(gomock.Any(), owner).Return(errors.New("redis down"))

	got, err := s.GetUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Equal(t, owner, got)
}

func TestService_UpdateUser(t *testing.T) {
	tests := []struct {
		name         string
		req          model.UpdateUserRequest
		mockBehavior func(m mocks)
		want         model.User
		wantErr      error
	}{
		{
			name: "ok. only name",
			req:  model.UpdateUserRequest{Name: strPtr("New"), Email: strPtr("  ")},
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				upd := model.User{ID: owner.ID, Name: "New", Email: owner.Email}
				m.repo.EXPECT().UpdateUser(gomock.Any(), upd).Return(upd, nil)
				m.cache.EXPECT().Set(gomock.Any(), upd).Return(nil)
			},
			want: model.User{ID: owner.ID, Name: "New", Email: owner.Email},
		},
		{
			name: "ok. nothing to change",
			req:  model.UpdateUserRequest{},
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
			},
			want: owner,
		},
		{
			name: "err. duplicate email",
			req:  model.UpdateUserRequest{Email: strPtr("booker@mail.ru")},
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				m.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(model.User{}, errs.ErrAlreadyExists)
			},
			wantErr: errs.ErrAlreadyExists,
		},
		{
			name: "err. missing",
			req:  model.UpdateUserRequest{Name: strPtr("New")},
			mockBehavior: func(m mocks) {
				m.expectMissingUser(owner.ID)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.mockBehavior(m)

			got, err := s.UpdateUser(context.Background(), owner.ID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	s, m := newTestService(t)
	m.repo.EXPECT().DeleteUser(gomock.Any(), owner.ID).Return(nil)
	m.cache.EXPECT().Delete(gomock.Any(), owner.ID).Return(nil)
	require.NoError(t, s.DeleteUser(context.Background(), owner.ID))

	s, m = newTestService(t)
	m.repo.EXPECT().DeleteUser(gomock.Any(), int64(99)).Return(errs.ErrNotFound)
	require.ErrorIs(t, s.DeleteUser(context.Background(), 99), errs.ErrNotFound)
}

func TestService_UpdateItem(t *testing.T) {
	tests := []struct {
		name         string
		userID       int64
		req          model.UpdateItemRequest
		mockBehavior func(m mocks)
		wantErr      error
	}{
		{
			name:   "ok",
			userID: owner.ID,
			req:    model.UpdateItemRequest{Name: strPtr(""), Available: boolPtr(false)},
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
				upd := drill
				upd.Available = false
				m.repo.EXPECT().UpdateItem(gomock.Any(), upd).Return(upd, nil)
			},
		},
		{
			name:   "err. not owner",
			userID: booker.ID,
			req:    model.UpdateItemRequest{Name: strPtr("Mine")},
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:   "err. missing item",
			userID: owner.ID,
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(model.Item{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.mockBehavior(m)

			_, err := s.UpdateItem(context.Background(), tt.userID, drill.ID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_CreateItem_Request(t *testing.T) {
	reqID := int64(5)
	create := model.CreateItemRequest{Name: "Drill", Description: "d", Available: boolPtr(true), RequestID: &reqID}
	dbErr := errors.New("connection reset")

	tests := []struct {
		name         string
		mockBehavior func(m mocks)
		want         model.Item
		wantErr      error
	}{
		{
			name: "ok. linked to existing request",
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				m.repo.EXPECT().GetRequest(gomock.Any(), reqID).Return(model.ItemRequest{ID: reqID}, nil)
				m.repo.EXPECT().
					CreateItem(gomock.Any(), model.Item{Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID, RequestID: &reqID}).
					Return(model.Item{ID: 11, Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID, RequestID: &reqID}, nil)
			},
			want: model.Item{ID: 11, Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID, RequestID: &reqID},
		},
		{
			name: "ok. unknown request leaves item unlinked",
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				m.repo.EXPECT().GetRequest(gomock.Any(), reqID).Return(model.ItemRequest{}, errs.ErrNotFound)
				m.repo.EXPECT().
					CreateItem(gomock.Any(), model.Item{Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID}).
					Return(model.Item{ID: 11, Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID}, nil)
			},
			want: model.Item{ID: 11, Name: "Drill", Description: "d", Available: true, OwnerID: owner.ID},
		},
		{
			name: "err. request lookup fails",
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				m.repo.EXPECT().GetRequest(gomock.Any(), reqID).Return(model.ItemRequest{}, dbErr)
			},
			wantErr: dbErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.mockBehavior(m)

			got, err := s.CreateItem(context.Background(), owner.ID, create)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ListOwnerItems(t *testing.T) {
	s, m := newTestService(t)
	page := model.Page{From: 0, Size: 10}
	saw := model.Item{ID: 11, Name: "Saw", Description: "Hand saw", Available: true, OwnerID: owner.ID}
	comments := []model.Comment{
		{ID: 1, Text: "good", ItemID: drill.ID, AuthorID: booker.ID, AuthorName: booker.Name},
		{ID: 2, Text: "loud", ItemID: drill.ID, AuthorID: booker.ID, AuthorName: booker.Name},
	}
	last := model.BookingShort{ID: 3, BookerID: booker.ID, ItemID: drill.ID}
	next := model.BookingShort{ID: 4, BookerID: booker.ID, ItemID: drill.ID}
	ids := []int64{drill.ID, saw.ID}

	m.expectUser(owner)
	m.repo.EXPECT().ListItemsByOwner(gomock.Any(), owner.ID, page).Return([]model.Item{drill, saw}, nil)
	m.repo.EXPECT().ListComments(gomock.Any(), ids).Return(comments, nil)
	m.repo.EXPECT().LastBookings(gomock.Any(), ids, now).Return([]model.BookingShort{last}, nil)
	m.repo.EXPECT().NextBookings(gomock.Any(), ids, now).Return([]model.BookingShort{next}, nil)

	got, err := s.ListOwnerItems(context.Background(), owner.ID, page)
	require.NoError(t, err)
	require.Equal(t, []model.ItemDetails{
		{Item: drill, LastBooking: &last, NextBooking: &next, Comments: comments},
		{Item: saw, Comments: []model.Comment{}},
	}, got)
}

func TestService_ListOwnerItems_MissingUser(t *testing.T) {
	s, m := newTestService(t)
	m.expectMissingUser(99)

	_, err := s.ListOwnerItems(context.Background(), 99, model.Page{Size: 10})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_GetItem(t *testing.T) {
	comments := []model.Comment{{ID: 1, Text: "good", ItemID: drill.ID, AuthorID: booker.ID, AuthorName: booker.Name}}
	last := []model.BookingShort{{ID: 3, BookerID: booker.ID, ItemID: drill.ID}}

	t.Run("owner sees bookings", func(t *testing.T) {
		s, m := newTestService(t)
		m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
		m.repo.EXPECT().ListComments(gomock.Any(), []int64{drill.ID}).Return(comments, nil)
		m.repo.EXPECT().LastBookings(gomock.Any(), []int64{drill.ID}, now).Return(last, nil)
		m.repo.EXPECT().NextBookings(gomock.Any(), []int64{drill.ID}, now).Return(nil, nil)

		got, err := s.GetItem(context.Background(), owner.ID, drill.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		assert.Equal(t, int64(3), got.LastBooking.ID)
		assert.Nil(t, got.NextBooking)
		assert.Equal(t, comments, got.Comments)
	})

	t.Run("others do not", func(t *testing.T) {
		s, m := newTestService(t)
		m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
		m.repo.EXPECT().ListComments(gomock.Any(), []int64{drill.ID}).Return(nil, nil)

		got, err := s.GetItem(context.Background(), booker.ID, drill.ID)
		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.Equal(t, []model.Comment{}, got.Comments)
	})
}

func TestService_SearchItems_Blank(t *testing.T) {
	s, _ := newTestService(t)
	got, err := s.SearchItems(context.Background(), "   ", model.Page{Size: 10})
	require.NoError(t, err)
	require.Equal(t, []model.Item{}, got)
}

func TestService_AddComment(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s, m := newTestService(t)
		m.expectUser(booker)
		m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
		m.repo.EXPECT().HasFinishedBooking(gomock.Any(), drill.ID, booker.ID, now).Return(true, nil)
		m.repo.EXPECT().CreateComment(gomock.Any(), model.Comment{
			Text: "good", ItemID: drill.ID, AuthorID: booker.ID, Created: model.NewDateTime(now),
		}).Return(model.Comment{ID: 1, Text: "good", AuthorName: booker.Name}, nil)

		got, err := s.AddComment(context.Background(), booker.ID, drill.ID, model.CreateCommentRequest{Text: " good "})
		require.NoError(t, err)
		assert.Equal(t, booker.Name, got.AuthorName)
	})

	t.Run("err. no finished booking", func(t *testing.T) {
		s, m := newTestService(t)
		m.expectUser(booker)
		m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
		m.repo.EXPECT().HasFinishedBooking(gomock.Any(), drill.ID, booker.ID, now).Return(false, nil)

		_, err := s.AddComment(context.Background(), booker.ID, drill.ID, model.CreateCommentRequest{Text: "good"})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_CreateBooking(t *testing.T) {
	start, end := now.Add(time.Hour), now.Add(2*time.Hour)
	unavailable := drill
	unavailable.Available = false

	tests := []struct {
		name         string
		bookerID     int64
		req          model.CreateBookingRequest
		mockBehavior func(m mocks)
		wantErr      error
	}{
		{
			name:     "ok",
			bookerID: booker.ID,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(start), End: dt(end)},
			mockBehavior: func(m mocks) {
				m.expectUser(booker)
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
				m.repo.EXPECT().CreateBooking(gomock.Any(), model.Booking{
					Start: model.NewDateTime(start), End: model.NewDateTime(end),
					ItemID: drill.ID, BookerID: booker.ID, Status: model.StatusWaiting,
				}).Return(model.Booking{
					ID: 7, Start: model.NewDateTime(start), End: model.NewDateTime(end),
					ItemID: drill.ID, BookerID: booker.ID, Status: model.StatusWaiting,
				}, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e model.BookingEvent) error {
						if e.Type != model.EventBookingCreated || e.OwnerID != owner.ID || e.BookingID != 7 {
							return errors.New("unexpected event")
						}
						return nil
					})
			},
		},
		{
			name:     "ok. event failure is not fatal",
			bookerID: booker.ID,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(start), End: dt(end)},
			mockBehavior: func(m mocks) {
				m.expectUser(booker)
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
				m.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 7, ItemID: drill.ID, BookerID: booker.ID, Status: model.StatusWaiting}, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
		},
		{
			name:     "err. item unavailable",
			bookerID: booker.ID,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(start), End: dt(end)},
			mockBehavior: func(m mocks) {
				m.expectUser(booker)
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(unavailable, nil)
			},
			wantErr: errs.ErrValidation,
		},
		{
			name:     "err. owner books own item",
			bookerID: owner.ID,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(start), End: dt(end)},
			mockBehavior: func(m mocks) {
				m.expectUser(owner)
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "err. end before start",
			bookerID: booker.ID,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(end), End: dt(start)},
			mockBehavior: func(m mocks) {
				m.expectUser(booker)
				m.repo.EXPECT().GetItem(gomock.Any(), drill.ID).Return(drill, nil)
			},
			wantErr: errs.ErrValidation,
		},
		{
			name:     "err. missing booker",
			bookerID: 99,
			req:      model.CreateBookingRequest{ItemID: drill.ID, Start: dt(start), End: dt(end)},
			mockBehavior: func(m mocks) {
				m.expectMissingUser(99)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:         "err. no dates",
			bookerID:     booker.ID,
			req:          model.CreateBookingRequest{ItemID: drill.ID},
			mockBehavior: func(m mocks) {},
			wantErr:      errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.mockBehavior(m)

			got, err := s.CreateBooking(context.Background(), tt.bookerID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.BookingItem{ID: drill.ID, Name: drill.Name}, got.Item)
			assert.Equal(t, booker, got.Booker)
		})
	}
}

func waitingRow() model.BookingRow {
	return model.BookingRow{
		Booking: model.Booking{
			ID: 7, ItemID: drill.ID, BookerID: booker.ID, Status: model.StatusWaiting,
			Start: model.NewDateTime(now.Add(time.Hour)), End: model.NewDateTime(now.Add(2 * time.Hour)),
		},
		ItemName: drill.Name, ItemOwnerID: owner.ID, BookerName: booker.Name, BookerEmail: booker.Email,
	}
}

func TestService_DecideBooking(t *testing.T) {
	approvedRow := waitingRow()
	approvedRow.Status = model.StatusApproved

	tests := []struct {
		name         string
		userID       int64
		approved     bool
		mockBehavior func(m mocks)
		wantStatus   model.Status
		wantErr      error
	}{
		{
			name:     "ok. approve",
			userID:   owner.ID,
			approved: true,
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(waitingRow(), nil)
				m.repo.EXPECT().UpdateBookingStatus(gomock.Any(), int64(7), model.StatusApproved).Return(nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "ok. reject",
			userID:   owner.ID,
			approved: false,
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(waitingRow(), nil)
				m.repo.EXPECT().UpdateBookingStatus(gomock.Any(), int64(7), model.StatusRejected).Return(nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:     "err. not owner",
			userID:   booker.ID,
			approved: true,
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(waitingRow(), nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "err. already approved",
			userID:   owner.ID,
			approved: true,
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(approvedRow, nil)
			},
			wantErr: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.mockBehavior(m)

			got, err := s.DecideBooking(context.Background(), tt.userID, 7, tt.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_CancelBooking(t *testing.T) {
	started := waitingRow()
	started.Start = model.NewDateTime(now.Add(-time.Hour))
	rejected := waitingRow()
	rejected.Status = model.StatusRejected

	tests := []struct {
		name    string
		userID  int64
		row     model.BookingRow
		ok      bool
		wantErr error
	}{
		{name: "ok", userID: booker.ID, row: waitingRow(), ok: true},
		{name: "err. not booker", userID: owner.ID, row: waitingRow(), wantErr: errs.ErrNotFound},
		{name: "err. started", userID: booker.ID, row: started, wantErr: errs.ErrValidation},
		{name: "err. rejected", userID: booker.ID, row: rejected, wantErr: errs.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(tt.row, nil)
			if tt.ok {
				m.repo.EXPECT().UpdateBookingStatus(gomock.Any(), int64(7), model.StatusCanceled).Return(nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := s.CancelBooking(context.Background(), tt.userID, 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.StatusCanceled, got.Status)
		})
	}
}

func TestService_GetBooking_Visibility(t *testing.T) {
	for _, id := range []int64{owner.ID, booker.ID} {
		s, m := newTestService(t)
		m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(waitingRow(), nil)
		_, err := s.GetBooking(context.Background(), id, 7)
		require.NoError(t, err)
	}

	s, m := newTestService(t)
	m.repo.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(waitingRow(), nil)
	_, err := s.GetBooking(context.Background(), 42, 7)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ListOwnerBookings(t *testing.T) {
	s, m := newTestService(t)
	page := model.Page{From: 0, Size: 10}
	m.expectUser(owner)
	m.repo.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{
		OwnerID: owner.ID, State: model.StateFuture, Now: now, Page: page,
	}).Return([]model.BookingRow{waitingRow()}, nil)

	got, err := s.ListOwnerBookings(context.Background(), owner.ID, model.StateFuture, page)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(7), got[0].ID)
}

func TestService_GetRequest_WithItems(t *testing.T) {
	s, m := newTestService(t)
	reqID := int64(4)
	answer := model.Item{ID: 11, Name: "Saw", OwnerID: owner.ID, RequestID: &reqID}

	m.expectUser(booker)
	m.repo.EXPECT().GetRequest(gomock.Any(), reqID).Return(model.ItemRequest{ID: reqID, RequestorID: booker.ID}, nil)
	m.repo.EXPECT().ListItemsByRequests(gomock.Any(), []int64{reqID}).Return([]model.Item{answer}, nil)

	got, err := s.GetRequest(context.Background(), booker.ID, reqID)
	require.NoError(t, err)
	require.Equal(t, []model.Item{answer}, got.Items)
}

func TestService_ListOtherRequests_NoItems(t *testing.T) {
	s, m := newTestService(t)
	page := model.Page{From: 0, Size: 20}
	m.expectUser(owner)
	m.repo.EXPECT().ListOtherRequests(gomock.Any(), owner.ID, page).
		Return([]model.ItemRequest{{ID: 1, RequestorID: booker.ID}}, nil)
	m.repo.EXPECT().ListItemsByRequests(gomock.Any(), []int64{1}).Return([]model.Item{}, nil)

	got, err := s.ListOtherRequests(context.Background(), owner.ID, page)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []model.Item{}, got[0].Items)
}

func TestService_CreateRequest(t *testing.T) {
	s, m := newTestService(t)
	m.expectUser(booker)
	m.repo.EXPECT().
		CreateRequest(gomock.Any(), model.ItemRequest{Description: "need a ladder", RequestorID: booker.ID, Created: model.NewDateTime(now)}).
		Return(model.ItemRequest{ID: 4, Description: "need a ladder", RequestorID: booker.ID, Created: model.NewDateTime(now)}, nil)

	got, err := s.CreateRequest(context.Background(), booker.ID, model.CreateItemRequestRequest{Description: " need a ladder "})
	require.NoError(t, err)
	require.Equal(t, int64(4), got.ID)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items)
}

func TestService_ListOwnRequests(t *testing.T) {
	s, m := newTestService(t)
	ladder, saw := int64(4), int64(5)
	answer := model.Item{ID: 11, Name: "Ladder", OwnerID: owner.ID, RequestID: &ladder}

	m.expectUser(booker)
	m.repo.EXPECT().ListRequestsByRequestor(gomock.Any(), booker.ID).Return([]model.ItemRequest{
		{ID: saw, RequestorID: booker.ID},
		{ID: ladder, RequestorID: booker.ID},
	}, nil)
	m.repo.EXPECT().ListItemsByRequests(gomock.Any(), []int64{saw, ladder}).Return([]model.Item{answer}, nil)

	got, err := s.ListOwnRequests(context.Background(), booker.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []model.Item{}, got[0].Items)
	require.Equal(t, []model.Item{answer}, got[1].Items)
}
