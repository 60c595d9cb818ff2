package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/shareit/server/internal/model"
)

var requestColumns = []string{"id", "description", "requestor_id", "created"}

func (r *repository) CreateRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("description", "requestor_id", "created").
		Values(req.Description, req.RequestorID, req.Created).
		Suffix("RETURNING id, description, requestor_id, created").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var created model.ItemRequest
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.ItemRequest{}, mapErr(err, "CreateRequest")
	}
	return created, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, query, args...); err != nil {
		return model.ItemRequest{}, mapErr(err, "GetRequest")
	}
	return req, nil
}

func (r *repository) ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	return r.selectRequests(ctx, "ListRequestsByRequestor", qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created DESC", "id DESC"))
}

func (r *repository) ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error) {
	return r.selectRequests(ctx, "ListOtherRequests", qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.NotEq{"requestor_id": userID}).
		OrderBy("created DESC", "id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

func (r *repository) selectRequests(ctx context.Context, op string, b sq.SelectBuilder) ([]model.ItemRequest, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		return nil, mapErr(err, op)
	}
	return reqs, nil
}
