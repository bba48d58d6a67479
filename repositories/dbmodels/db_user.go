package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/utils"
)

type DBUser struct {
	Id          string           `db:"id"`
	Email       string           `db:"email"`
	FirstName   string           `db:"first_name"`
	LastName    string           `db:"last_name"`
	Role        int              `db:"role"`
	FirebaseUid string           `db:"firebase_uid"`
	DeletedAt   pgtype.Timestamp `db:"deleted_at"`
	CreatedAt   time.Time        `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	user := models.User{
		UserId:      models.UserId(db.Id),
		Email:       db.Email,
		FirstName:   db.FirstName,
		LastName:    db.LastName,
		Role:        models.Role(db.Role),
		FirebaseUid: db.FirebaseUid,
		CreatedAt:   db.CreatedAt,
	}
	if db.DeletedAt.Valid {
		user.DeletedAt = &db.DeletedAt.Time
	}
	return user, nil
}
