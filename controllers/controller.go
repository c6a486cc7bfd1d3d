package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"

	"eventstats/analytics"
	"eventstats/config"
	"eventstats/database"
	"eventstats/logging"
	"eventstats/metrics"
	"eventstats/models"
	"eventstats/utils"
)

// Store is the read side of the registration database the handlers need.
type Store interface {
	Ping(ctx context.Context) error
	FetchEvents(ctx context.Context) ([]models.Event, error)
	FindEvent(ctx context.Context, ref string) (models.Event, error)
	FetchEventDates(ctx context.Context, eventID int64) ([]models.EventDate, error)
	FetchRegistrationsForEventDate(ctx context.Context, eventID int64, day models.Date) ([]models.RegistrationRecord, error)
	FetchCrossEventRegistrations(ctx context.Context, companionIDs []int64, excludeEventID int64) ([]models.CrossEventRegistration, error)
	FetchEventsOverview(ctx context.Context) ([]models.EventOverviewRow, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

type Controller struct {
	store Store
	auth  config.AuthConfig
	// catalog caches the event and event-date selector lists; nil disables it.
	catalog *cache.Cache
	now     func() time.Time
}

func New(store Store, cfg *config.Config) *Controller {
	ctl := &Controller{
		store: store,
		auth:  cfg.Auth,
		now:   time.Now,
	}
	if cfg.Cache.TTL > 0 {
		ctl.catalog = cache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}
	return ctl
}

// SetClock replaces the clock used for ages and token expiry.
func (ctl *Controller) SetClock(now func() time.Time) {
	ctl.now = now
}

// cached returns the catalog entry under key, calling load on a miss.
func cached[T any](ctl *Controller, key string, load func() (T, error)) (T, error) {
	if ctl.catalog != nil {
		if v, ok := ctl.catalog.Get(key); ok {
			metrics.CatalogCacheRequests.WithLabelValues("hit").Inc()
			return v.(T), nil
		}
		metrics.CatalogCacheRequests.WithLabelValues("miss").Inc()
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if ctl.catalog != nil {
		ctl.catalog.SetDefault(key, v)
	}
	return v, nil
}

// findEvent resolves the :event path segment (numeric id or slug).
func (ctl *Controller) findEvent(c *fiber.Ctx) (models.Event, error) {
	return ctl.store.FindEvent(c.UserContext(), c.Params("event"))
}

func (ctl *Controller) parseDate(c *fiber.Ctx) (models.Date, error) {
	day, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return models.Date{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}

// parseQuery fills dst from the query string and validates it. dst should
// already hold the defaults.
func parseQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := utils.Validate.Struct(dst); err != nil {
		return validationError{err}
	}
	return nil
}

type validationError struct {
	err error
}

func (v validationError) Error() string { return v.err.Error() }
func (v validationError) Unwrap() error { return v.err }

// fail writes the error response for err. what names the resource in 404s.
func fail(c *fiber.Ctx, err error, what string) error {
	var (
		fe   *fiber.Error
		verr validationError
		qerr *database.QueryError
	)
	switch {
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FormatValidationErrors(verr.err)})
	case errors.Is(err, database.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
	case errors.Is(err, analytics.ErrInvalidStaffParams):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &qerr):
		logging.Error().Err(err).Str("operation", qerr.Op).Str("path", c.Path()).Msg("data store query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to query the data store"})
	}
	logging.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
