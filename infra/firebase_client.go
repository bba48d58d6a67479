package infra

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/cockroachdb/errors"
)

func InitializeFirebase(ctx context.Context, projectId string) *firebase.App {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectId})
	if err != nil {
		panic(errors.Wrap(err, "error initializing firebase app"))
	}
	return app
}

func FirebaseAuthClient(ctx context.Context, app *firebase.App) *auth.Client {
	client, err := app.Auth(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting firebase Auth client"))
	}
	return client
}

func FirebaseMessagingClient(ctx context.Context, app *firebase.App) *messaging.Client {
	client, err := app.Messaging(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting firebase Messaging client"))
	}
	return client
}
