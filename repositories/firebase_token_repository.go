package repositories

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
)

type FireBaseTokenRepository struct {
	firebaseClient *auth.Client
}

func NewFireBaseTokenRepository(firebaseClient *auth.Client) *FireBaseTokenRepository {
	return &FireBaseTokenRepository{
		firebaseClient: firebaseClient,
	}
}

func (repo *FireBaseTokenRepository) VerifyFirebaseIDToken(ctx context.Context, firebaseIdToken string) (models.FirebaseIdentity, error) {
	token, err := repo.firebaseClient.VerifyIDToken(ctx, firebaseIdToken)
	if err != nil {
		return models.FirebaseIdentity{}, errors.Join(models.UnAuthorizedError, err)
	}

	identities := token.Firebase.Identities["email"]
	if identities == nil {
		return models.FirebaseIdentity{}, errors.New("unexpected firebase id token content: field email is missing")
	}

	emails, ok := identities.([]interface{})
	if !ok || len(emails) == 0 {
		return models.FirebaseIdentity{}, errors.New("unexpected firebase id token content: identities is not an array")
	}

	email, ok := emails[0].(string)
	if !ok {
		return models.FirebaseIdentity{}, errors.New("unexpected firebase id token content")
	}

	return models.FirebaseIdentity{
		Email:       email,
		FirebaseUid: token.Subject,
	}, nil
}
