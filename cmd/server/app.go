package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gatherhq/gather-api/internal/config"
	"github.com/gatherhq/gather-api/internal/domain"
	"github.com/gatherhq/gather-api/internal/mediator"
	"github.com/gatherhq/gather-api/internal/platform/postgres"
	"github.com/gatherhq/gather-api/internal/service/auth"
	"github.com/gatherhq/gather-api/internal/store"
	"github.com/gatherhq/gather-api/internal/usecase/accounts"
	"github.com/gatherhq/gather-api/internal/usecase/activities"
)

// application holds the wired dependencies of the running server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB
	userStore      store.UserStore
	activityStore  store.ActivityStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	dispatcher     *mediator.Dispatcher
}

// newApplication wires stores, services, and the dispatcher. A failed
// handler registration (e.g. a duplicate binding) is a configuration error
// and aborts startup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userStore:      postgres.NewPostgresUserStore(db),
		activityStore:  postgres.NewPostgresActivityStore(db),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(),
		dispatcher:     mediator.New(),
	}

	if err := app.registerHandlers(); err != nil {
		return nil, fmt.Errorf("failed to register use-case handlers: %w", err)
	}

	return app, nil
}

// registerHandlers binds every use-case handler to its request type.
func (app *application) registerHandlers() error {
	d := app.dispatcher

	if err := mediator.Register[activities.ListQuery, []domain.Activity](
		d, activities.NewListHandler(app.activityStore)); err != nil {
		return err
	}
	if err := mediator.Register[activities.DetailsQuery, domain.Activity](
		d, activities.NewDetailsHandler(app.activityStore)); err != nil {
		return err
	}
	if err := mediator.Register[activities.CreateCommand, mediator.Unit](
		d, activities.NewCreateHandler(app.activityStore)); err != nil {
		return err
	}
	if err := mediator.Register[activities.EditCommand, mediator.Unit](
		d, activities.NewEditHandler(app.activityStore)); err != nil {
		return err
	}
	if err := mediator.Register[activities.DeleteCommand, mediator.Unit](
		d, activities.NewDeleteHandler(app.activityStore)); err != nil {
		return err
	}

	if err := mediator.Register[accounts.LoginCommand, accounts.UserView](
		d, accounts.NewLoginHandler(app.userStore, app.jwtService, app.passwordHasher)); err != nil {
		return err
	}
	if err := mediator.Register[accounts.RegisterCommand, accounts.UserView](
		d, accounts.NewRegisterHandler(app.userStore, app.jwtService, app.passwordHasher)); err != nil {
		return err
	}
	if err := mediator.Register[accounts.CurrentUserQuery, accounts.UserView](
		d, accounts.NewCurrentUserHandler(app.userStore, app.jwtService)); err != nil {
		return err
	}

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
