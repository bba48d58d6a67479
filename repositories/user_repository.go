package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories/dbmodels"
)

func (repo AmanaDbRepository) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		selectUsers().Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo AmanaDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		selectUsers().
			Where(squirrel.Eq{"email": email, "deleted_at": nil}).
			OrderBy("created_at DESC").
			Limit(1),
		dbmodels.AdaptUser,
	)
}

func (repo AmanaDbRepository) UserByFirebaseUid(ctx context.Context, exec Executor, firebaseUid string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		selectUsers().Where(squirrel.Eq{"firebase_uid": firebaseUid, "deleted_at": nil}),
		dbmodels.AdaptUser,
	)
}

func (repo AmanaDbRepository) ListUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectUsers().
			Where(squirrel.Eq{"deleted_at": nil}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptUser,
	)
}

func selectUsers() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS)
}

func (repo AmanaDbRepository) CreateUser(
	ctx context.Context,
	exec Executor,
	createUser models.CreateUser,
	newUserId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns("id", "email", "first_name", "last_name", "role").
			Values(
				newUserId,
				createUser.Email,
				createUser.FirstName,
				createUser.LastName,
				int(createUser.Role),
			),
	)
}

func (repo AmanaDbRepository) UpdateUser(ctx context.Context, exec Executor, updateUser models.UpdateUser) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": updateUser.UserId})

	touched := false
	if updateUser.Email != nil {
		query = query.Set("email", *updateUser.Email)
		touched = true
	}
	if updateUser.FirstName != nil {
		query = query.Set("first_name", *updateUser.FirstName)
		touched = true
	}
	if updateUser.LastName != nil {
		query = query.Set("last_name", *updateUser.LastName)
		touched = true
	}
	if updateUser.Role != nil {
		query = query.Set("role", int(*updateUser.Role))
		touched = true
	}
	if !touched {
		return errors.Wrap(models.BadParameterError, "no field to update")
	}

	return ExecBuilder(ctx, exec, query)
}

// UpdateUserFirebaseUid stores the firebase uid seen on the user's first
// token exchange, binding the account to that identity provider subject.
func (repo AmanaDbRepository) UpdateUserFirebaseUid(
	ctx context.Context,
	exec Executor,
	userId models.UserId,
	firebaseUid string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("firebase_uid", firebaseUid).
			Where(squirrel.Eq{"id": userId}),
	)
}

func (repo AmanaDbRepository) SoftDeleteUser(ctx context.Context, exec Executor, userId models.UserId) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("deleted_at", squirrel.Expr("NOW()")).
			Set("firebase_uid", "").
			Where(squirrel.Eq{"id": userId}),
	)
}
