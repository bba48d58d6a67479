package repositories

import (
	"crypto/rsa"

	"firebase.google.com/go/v4/auth"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amanahq/amana-backend/repositories/clock"
)

type Repositories struct {
	ExecutorGetter          ExecutorGetter
	AmanaDbRepository       *AmanaDbRepository
	FirebaseTokenRepository *FireBaseTokenRepository
	JwtRepository           *JwtRepository
	BlobRepository          BlobRepository
	PushSender              PushSender
	Translator              Translator
	TextGenerator           TextGenerator
	Clock                   clock.Clock
}

type Option func(*options)

type options struct {
	blobRepository BlobRepository
	pushSender     PushSender
	translator     Translator
	textGenerator  TextGenerator
	clock          clock.Clock
}

func WithBlobRepository(blobRepository BlobRepository) Option {
	return func(o *options) {
		o.blobRepository = blobRepository
	}
}

func WithPushSender(pushSender PushSender) Option {
	return func(o *options) {
		o.pushSender = pushSender
	}
}

func WithTranslator(translator Translator) Option {
	return func(o *options) {
		o.translator = translator
	}
}

func WithTextGenerator(textGenerator TextGenerator) Option {
	return func(o *options) {
		o.textGenerator = textGenerator
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func NewRepositories(
	connectionPool *pgxpool.Pool,
	jwtSigningKey *rsa.PrivateKey,
	firebaseClient *auth.Client,
	opts ...Option,
) Repositories {
	o := &options{
		blobRepository: NewBlobRepository(),
		clock:          clock.New(),
	}
	for _, apply := range opts {
		apply(o)
	}

	return Repositories{
		ExecutorGetter:          NewExecutorGetter(connectionPool),
		AmanaDbRepository:       NewAmanaDbRepository(),
		FirebaseTokenRepository: NewFireBaseTokenRepository(firebaseClient),
		JwtRepository:           NewJwtRepository(jwtSigningKey),
		BlobRepository:          o.blobRepository,
		PushSender:              o.pushSender,
		Translator:              o.translator,
		TextGenerator:           o.textGenerator,
		Clock:                   o.clock,
	}
}
