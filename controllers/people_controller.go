package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eventstats/analytics"
)

// GetEventPeople lists the people registered for an event date, or only those
// who checked in when attended=true.
func (ctl *Controller) GetEventPeople(c *fiber.Ctx) error {
	day, err := ctl.parseDate(c)
	if err != nil {
		return fail(c, err, "Event")
	}
	event, err := ctl.findEvent(c)
	if err != nil {
		return fail(c, err, "Event")
	}

	rows, err := ctl.store.FetchRegistrationsForEventDate(c.UserContext(), event.ID, day)
	if err != nil {
		return fail(c, err, "Event")
	}

	people := analytics.People(rows, c.QueryBool("attended"), ctl.now())
	return c.JSON(fiber.Map{
		"message": "Success",
		"event":   event,
		"date":    day,
		"total":   len(people),
		"data":    people,
	})
}
