package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/shareit/server/internal/model"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

const itemReturning = "RETURNING id, name, description, available, owner_id, request_id"

func (r *repository) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var created model.Item
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Item{}, mapErr(err, "CreateItem")
	}
	return created, nil
}

func (r *repository) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Update(itemsTableName).
		SetMap(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"available":   item.Available,
		}).
		Where(sq.Eq{"id": item.ID}).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var updated model.Item
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		return model.Item{}, mapErr(err, "UpdateItem")
	}
	return updated, nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	query, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		return model.Item{}, mapErr(err, "GetItem")
	}
	return item, nil
}

func (r *repository) DeleteItem(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err, "DeleteItem")
	}
	return affected(res, "DeleteItem")
}

func (r *repository) ListItemsByOwner(ctx context.Context, ownerID int64, page model.Page) ([]model.Item, error) {
	return r.selectItems(ctx, "ListItemsByOwner", qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchItems matches available items by a case-insensitive substring of name or description.
func (r *repository) SearchItems(ctx context.Context, text string, page model.Page) ([]model.Item, error) {
	pattern := fmt.Sprintf("%%%s%%", likeEscaper.Replace(text))
	return r.selectItems(ctx, "SearchItems", qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

func (r *repository) ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}
	return r.selectItems(ctx, "ListItemsByRequests", qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id"))
}

func (r *repository) selectItems(ctx context.Context, op string, b sq.SelectBuilder) ([]model.Item, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, mapErr(err, op)
	}
	return items, nil
}

const createCommentQuery = `
with ins as (
    insert into comments (text, item_id, author_id, created)
    values ($1, $2, $3, $4)
    returning id, text, item_id, author_id, created
)
select ins.id, ins.text, ins.item_id, ins.author_id, ins.created, u.name as author_name
from ins
join users u on u.id = ins.author_id`

func (r *repository) CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	var created model.Comment
	if err := r.db.GetContext(ctx, &created, createCommentQuery,
		comment.Text, comment.ItemID, comment.AuthorID, comment.Created); err != nil {
		return model.Comment{}, mapErr(err, "CreateComment")
	}
	return created, nil
}

func (r *repository) ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	if len(itemIDs) == 0 {
		return comments, nil
	}
	query, args, err := qb.Select("c.id", "c.text", "c.item_id", "c.author_id", "c.created", "u.name AS author_name").
		From(commentsTableName + " c").
		Join(fmt.Sprintf("%s u ON u.id = c.author_id", usersTableName)).
		Where(sq.Eq{"c.item_id": itemIDs}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, mapErr(err, "ListComments")
	}
	return comments, nil
}
