package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"eventstats/analytics"
	"eventstats/models"
)

// GetEvents lists the events for the event selector.
func (ctl *Controller) GetEvents(c *fiber.Ctx) error {
	events, err := cached(ctl, "events", func() ([]models.Event, error) {
		return ctl.store.FetchEvents(c.UserContext())
	})
	if err != nil {
		return fail(c, err, "Event")
	}

	return c.JSON(fiber.Map{
		"message": "Success",
		"data":    events,
	})
}

// GetEventDates lists the dates of one event for the date selector.
func (ctl *Controller) GetEventDates(c *fiber.Ctx) error {
	event, err := ctl.findEvent(c)
	if err != nil {
		return fail(c, err, "Event")
	}

	key := "dates:" + strconv.FormatInt(event.ID, 10)
	dates, err := cached(ctl, key, func() ([]models.EventDate, error) {
		return ctl.store.FetchEventDates(c.UserContext(), event.ID)
	})
	if err != nil {
		return fail(c, err, "Event")
	}

	return c.JSON(fiber.Map{
		"message": "Success",
		"event":   event,
		"data":    dates,
	})
}

// GetEventsOverview summarises registrations and attendance of every event.
func (ctl *Controller) GetEventsOverview(c *fiber.Ctx) error {
	rows, err := ctl.store.FetchEventsOverview(c.UserContext())
	if err != nil {
		return fail(c, err, "Event")
	}

	return c.JSON(fiber.Map{
		"message": "Success",
		"data":    analytics.Overview(rows),
	})
}
