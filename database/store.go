package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"eventstats/metrics"
	"eventstats/models"
	"eventstats/utils"
)

// maxInParams caps the placeholders of one IN (...) list.
const maxInParams = 1000

// Store is the read-only query layer over the registration database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// track records metrics for op and wraps driver failures in a QueryError.
func track(op string, start time.Time, errp *error) {
	err := *errp
	failed := err != nil && !errors.Is(err, ErrNotFound)
	metrics.ObserveQuery(op, time.Since(start), failed)
	if failed {
		*errp = &QueryError{Op: op, Err: err}
	}
}

func (s *Store) Ping(ctx context.Context) (err error) {
	defer track("ping", time.Now(), &err)
	return s.db.PingContext(ctx)
}

func (s *Store) FetchEvents(ctx context.Context) (events []models.Event, err error) {
	defer track("fetch_events", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM event ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events = []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		e.Slug = utils.GenerateSlug(e.Name)
		events = append(events, e)
	}
	return events, rows.Err()
}

// FindEvent resolves a numeric id or an event slug. A numeric ref that
// matches no id is tried as a slug.
func (s *Store) FindEvent(ctx context.Context, ref string) (models.Event, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		e, err := s.findEventByID(ctx, id)
		if !errors.Is(err, ErrNotFound) {
			return e, err
		}
		// An all-digit ref may still be the slug of a name like "2025".
	}

	events, err := s.FetchEvents(ctx)
	if err != nil {
		return models.Event{}, err
	}
	slug := utils.GenerateSlug(ref)
	for _, e := range events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return models.Event{}, ErrNotFound
}

func (s *Store) findEventByID(ctx context.Context, id int64) (e models.Event, err error) {
	defer track("find_event", time.Now(), &err)

	err = s.db.QueryRowContext(ctx, `SELECT id, name FROM event WHERE id = ?`, id).Scan(&e.ID, &e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, err
	}
	e.Slug = utils.GenerateSlug(e.Name)
	return e, nil
}

func (s *Store) FetchEventDates(ctx context.Context, eventID int64) (dates []models.EventDate, err error) {
	defer track("fetch_event_dates", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, day_date, start_time, end_time
		FROM eventdate
		WHERE event_id = ? AND COALESCE(deleted, 0) = 0
		ORDER BY day_date, start_time`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates = []models.EventDate{}
	for rows.Next() {
		var (
			d          models.EventDate
			day        time.Time
			start, end sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.EventID, &day, &start, &end); err != nil {
			return nil, err
		}
		d.DayDate = models.NewDate(day)
		if d.StartTime, err = optionalTimeOfDay(start); err != nil {
			return nil, err
		}
		if d.EndTime, err = optionalTimeOfDay(end); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// The date condition sits inside the left join so that a registration with no
// check-in on day, or one on another day only, still yields one row.
const registrationsQuery = `
	SELECT
		r.id,
		r.event_id,
		r.assistant_id,
		r.companion_id,
		r.companion_type,
		r.created_at,
		r.reaction,
		r.reaction_date,
		u.created_at,
		u.email,
		u.first_name,
		u.last_name,
		u.is_active,
		u.role,
		a.id_number,
		a.id_number_type,
		a.phone,
		a.gender,
		a.date_of_birth,
		att.arrival_time,
		ed.day_date
	FROM registration AS r
	JOIN ` + "`user`" + ` AS u ON u.id = r.companion_id
	JOIN assistant AS a ON a.user_id = u.id
	LEFT JOIN (
		attendance AS att
		JOIN eventdate AS ed ON ed.id = att.event_date_id AND ed.day_date = ?
	) ON att.registration_id = r.id
	WHERE r.event_id = ?
	ORDER BY r.id`

// FetchRegistrationsForEventDate returns the people_registered row-set of one
// event date.
func (s *Store) FetchRegistrationsForEventDate(ctx context.Context, eventID int64, day models.Date) (records []models.RegistrationRecord, err error) {
	defer track("fetch_registrations", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, registrationsQuery, day.String(), eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records = []models.RegistrationRecord{}
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRegistration(rows *sql.Rows) (models.RegistrationRecord, error) {
	var (
		r                                      models.RegistrationRecord
		assistantID                            sql.NullInt64
		companionType, reaction, email         sql.NullString
		firstName, lastName, role              sql.NullString
		idNumber, idNumberType, phone, gender  sql.NullString
		arrival                                sql.NullString
		isActive                               sql.NullBool
		createdAt, reactionDate, userCreatedAt sql.NullTime
		dateOfBirth, dayDate                   sql.NullTime
	)

	err := rows.Scan(
		&r.RegistrationID, &r.EventID, &assistantID, &r.CompanionID, &companionType,
		&createdAt, &reaction, &reactionDate,
		&userCreatedAt, &email, &firstName, &lastName, &isActive, &role,
		&idNumber, &idNumberType, &phone, &gender, &dateOfBirth,
		&arrival, &dayDate,
	)
	if err != nil {
		return r, err
	}

	r.AssistantID = assistantID.Int64
	r.CompanionType = companionType.String
	r.Email = email.String
	r.FirstName = firstName.String
	r.LastName = lastName.String
	r.Role = role.String
	r.IsActive = isActive.Bool
	r.IDNumber = idNumber.String
	r.IDNumberType = idNumberType.String
	r.Phone = phone.String

	r.RegistrationCreatedAt = optionalTime(createdAt)
	r.ReactionDate = optionalTime(reactionDate)
	r.UserCreatedAt = optionalTime(userCreatedAt)
	r.DateOfBirth = optionalDate(dateOfBirth)
	r.DayDate = optionalDate(dayDate)

	if reaction.Valid {
		re := models.Reaction(reaction.String)
		r.Reaction = &re
	}
	if gender.Valid {
		g := models.Gender(gender.String)
		r.Gender = &g
	}
	if r.ArrivalTime, err = optionalTimeOfDay(arrival); err != nil {
		return r, err
	}
	return r, nil
}

// FetchCrossEventRegistrations returns the registrations of companionIDs for
// any event other than excludeEventID. An empty id list never reaches the
// database.
func (s *Store) FetchCrossEventRegistrations(ctx context.Context, companionIDs []int64, excludeEventID int64) (regs []models.CrossEventRegistration, err error) {
	regs = []models.CrossEventRegistration{}
	if len(companionIDs) == 0 {
		return regs, nil
	}

	defer track("fetch_cross_event_registrations", time.Now(), &err)

	for start := 0; start < len(companionIDs); start += maxInParams {
		end := min(start+maxInParams, len(companionIDs))
		chunk, err := s.crossEventChunk(ctx, companionIDs[start:end], excludeEventID)
		if err != nil {
			return nil, err
		}
		regs = append(regs, chunk...)
	}
	return regs, nil
}

func (s *Store) crossEventChunk(ctx context.Context, ids []int64, excludeEventID int64) ([]models.CrossEventRegistration, error) {
	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, excludeEventID)

	query := `SELECT companion_id, event_id FROM registration WHERE companion_id IN (` +
		placeholders(len(ids)) + `) AND event_id <> ?`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []models.CrossEventRegistration
	for rows.Next() {
		var reg models.CrossEventRegistration
		if err := rows.Scan(&reg.CompanionID, &reg.EventID); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (s *Store) FetchEventsOverview(ctx context.Context) (out []models.EventOverviewRow, err error) {
	defer track("fetch_events_overview", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			e.id,
			e.name,
			COALESCE(e.capacity, 0),
			COALESCE(e.is_cancelled, 0),
			COALESCE(e.is_published, 0),
			(SELECT COUNT(*) FROM eventdate ed WHERE ed.event_id = e.id AND COALESCE(ed.deleted, 0) = 0),
			(SELECT COUNT(*) FROM registration r WHERE r.event_id = e.id),
			(SELECT COUNT(DISTINCT att.registration_id)
			 FROM attendance att
			 JOIN registration r ON r.id = att.registration_id
			 WHERE r.event_id = e.id),
			(SELECT COUNT(*) FROM registration r WHERE r.event_id = e.id AND r.reaction = 'LIKE'),
			(SELECT COUNT(*) FROM registration r WHERE r.event_id = e.id AND r.reaction = 'DISLIKE')
		FROM event e
		ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out = []models.EventOverviewRow{}
	for rows.Next() {
		var o models.EventOverviewRow
		if err := rows.Scan(
			&o.EventID, &o.Name, &o.Capacity, &o.IsCancelled, &o.IsPublished,
			&o.Dates, &o.Registered, &o.Attended, &o.Likes, &o.Dislikes,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const userColumns = "id, email, first_name, last_name, role, is_active, hashed_password"

func (s *Store) FindUserByEmail(ctx context.Context, email string) (u models.User, err error) {
	defer track("find_user", time.Now(), &err)
	return scanUser(s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM `user` WHERE email = ?", email))
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (u models.User, err error) {
	defer track("find_user", time.Now(), &err)
	return scanUser(s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM `user` WHERE id = ?", id))
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		u                         models.User
		firstName, lastName, role sql.NullString
		isActive                  sql.NullBool
	)
	err := row.Scan(&u.ID, &u.Email, &firstName, &lastName, &role, &isActive, &u.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.Role = role.String
	u.IsActive = isActive.Bool
	return u, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func optionalTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func optionalDate(t sql.NullTime) *models.Date {
	if !t.Valid {
		return nil
	}
	d := models.NewDate(t.Time)
	return &d
}

func optionalTimeOfDay(s sql.NullString) (*models.TimeOfDay, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := models.ParseTimeOfDay(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
