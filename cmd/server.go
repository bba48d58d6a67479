package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/amanahq/amana-backend/api"
	"github.com/amanahq/amana-backend/infra"
	"github.com/amanahq/amana-backend/repositories"
	"github.com/amanahq/amana-backend/usecases"
	"github.com/amanahq/amana-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "amana-backend",
		AppUrl:              utils.GetEnv("APP_URL", ""),
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		TokenLifetimeMinute: utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*2),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		MaxCaseFileSize:     int64(utils.GetEnv("MAX_CASE_FILE_SIZE_MB", 30)) * 1024 * 1024,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "amana",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	gcpConfig := infra.GcpConfig{
		ProjectId:                    utils.GetEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleApplicationCredentials: utils.GetEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
	}
	serverConfig := struct {
		adminEmail        string
		caseFilesBucket   string
		genAiApiKey       string
		genAiModel        string
		jwtSigningKey     string
		jwtSigningKeyFile string
		loggingFormat     string
		pushEnabled       bool
		sentryDsn         string
		translateEnabled  bool
	}{
		adminEmail:        utils.GetEnv("CREATE_ADMIN_EMAIL", ""),
		caseFilesBucket:   utils.GetEnv("CASE_FILES_BUCKET_URL", ""),
		genAiApiKey:       utils.GetEnv("GENAI_API_KEY", ""),
		genAiModel:        utils.GetEnv("GENAI_MODEL", ""),
		jwtSigningKey:     utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		loggingFormat:     utils.GetEnv("LOGGING_FORMAT", "text"),
		pushEnabled:       utils.GetEnv("PUSH_NOTIFICATIONS_ENABLED", false),
		sentryDsn:         utils.GetEnv("SENTRY_DSN", ""),
		translateEnabled:  utils.GetEnv("TRANSLATION_ENABLED", false),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.ReadParseOrGenerateSigningKey(ctx,
		serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	firebaseApp := infra.InitializeFirebase(ctx, gcpConfig.ProjectId)

	repositoryOptions := make([]repositories.Option, 0, 3)
	if serverConfig.pushEnabled {
		repositoryOptions = append(repositoryOptions,
			repositories.WithPushSender(
				repositories.NewFcmRepository(infra.FirebaseMessagingClient(ctx, firebaseApp))))
	}
	if serverConfig.translateEnabled {
		translator, err := repositories.NewTranslationRepository(ctx)
		if err != nil {
			utils.LogAndReportSentryError(ctx, err)
			return err
		}
		repositoryOptions = append(repositoryOptions, repositories.WithTranslator(translator))
	}
	if serverConfig.genAiApiKey != "" {
		textGenerator, err := repositories.NewGenAiRepository(ctx,
			serverConfig.genAiApiKey, serverConfig.genAiModel)
		if err != nil {
			utils.LogAndReportSentryError(ctx, err)
			return err
		}
		repositoryOptions = append(repositoryOptions, repositories.WithTextGenerator(textGenerator))
	}

	repos := repositories.NewRepositories(
		pool,
		jwtSigningKey,
		infra.FirebaseAuthClient(ctx, firebaseApp),
		repositoryOptions...,
	)

	uc := usecases.NewUsecases(repos,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithCaseFilesBucketUrl(serverConfig.caseFilesBucket),
		usecases.WithTokenLifetimeMinute(apiConfig.TokenLifetimeMinute),
	)

	if serverConfig.adminEmail != "" {
		seedUsecase := uc.NewSeedUseCase()
		if err := seedUsecase.SeedAdminUser(ctx, serverConfig.adminEmail); err != nil {
			utils.LogAndReportSentryError(ctx, err)
			return err
		}
	}

	auth := api.NewAuthentication(uc.NewTokenValidator())
	tokenHandler := api.NewTokenHandler(uc.NewTokenGenerator())

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, auth, tokenHandler)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error while shutting down the server"))
		return err
	}

	return nil
}
