package token

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/amanahq/amana-backend/models"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/repositories/clock"
)

type userGetter interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	UserByFirebaseUid(ctx context.Context, exec repositories.Executor, firebaseUid string) (*models.User, error)
	UpdateUserFirebaseUid(ctx context.Context, exec repositories.Executor, userId models.UserId, firebaseUid string) error
}

type encoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type firebaseTokenVerifier interface {
	VerifyFirebaseIDToken(ctx context.Context, firebaseToken string) (models.FirebaseIdentity, error)
}

type executorFactory interface {
	NewExecutor() repositories.Executor
}

type Generator struct {
	repository      userGetter
	encoder         encoder
	verifier        firebaseTokenVerifier
	executorFactory executorFactory
	clock           clock.Clock
	tokenLifetime   time.Duration
}

func NewGenerator(
	repository userGetter,
	encoder encoder,
	verifier firebaseTokenVerifier,
	executorFactory executorFactory,
	c clock.Clock,
	tokenLifetimeMinute int,
) Generator {
	return Generator{
		repository:      repository,
		encoder:         encoder,
		verifier:        verifier,
		executorFactory: executorFactory,
		clock:           c,
		tokenLifetime:   time.Duration(tokenLifetimeMinute) * time.Minute,
	}
}

// GenerateToken exchanges a Firebase ID token for an application JWT. The
// user is matched by firebase uid, falling back to email for the first
// exchange; the uid is then bound to the account.
func (g Generator) GenerateToken(ctx context.Context, firebaseToken string) (string, time.Time, error) {
	identity, err := g.verifier.VerifyFirebaseIDToken(ctx, firebaseToken)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "verifier.VerifyFirebaseIDToken error")
	}

	exec := g.executorFactory.NewExecutor()

	user, err := g.repository.UserByFirebaseUid(ctx, exec, identity.FirebaseUid)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "repository.UserByFirebaseUid error")
	}

	if user == nil {
		user, err = g.repository.UserByEmail(ctx, exec, identity.Email)
		if err != nil {
			return "", time.Time{}, errors.Wrap(err, "repository.UserByEmail error")
		}
		if user == nil {
			return "", time.Time{}, errors.Wrapf(models.ErrUnknownUser,
				"no user with email %s", identity.Email)
		}
		if err := g.repository.UpdateUserFirebaseUid(ctx, exec, user.UserId, identity.FirebaseUid); err != nil {
			return "", time.Time{}, errors.Wrap(err, "repository.UpdateUserFirebaseUid error")
		}
	}

	expirationTime := g.clock.Now().Add(g.tokenLifetime)
	token, err := g.encoder.EncodeToken(expirationTime, user.IntoCredentials())
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "encoder.EncodeToken error")
	}

	return token, expirationTime, nil
}
