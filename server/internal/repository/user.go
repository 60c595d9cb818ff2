package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/server/internal/model"
)

var userColumns = []string{"id", "name", "email"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(user.Name, user.Email).
		Suffix("RETURNING id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Warn("CreateUser", zap.String("email", user.Email), zap.Error(err))
		return model.User{}, mapErr(err, "CreateUser")
	}
	return created, nil
}

func (r *repository) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("name", user.Name).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var updated model.User
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		return model.User{}, mapErr(err, "UpdateUser")
	}
	return updated, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		return model.User{}, mapErr(err, "GetUser")
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, mapErr(err, "ListUsers")
	}
	return users, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err, "DeleteUser")
	}
	return affected(res, "DeleteUser")
}
