package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"eventstats/analytics"
	"eventstats/config"
	"eventstats/database"
	"eventstats/middlewares"
	"eventstats/models"
	"eventstats/utils"
)

const testSecret = "test-secret"

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	events   []models.Event
	dates    map[int64][]models.EventDate
	rows     []models.RegistrationRecord
	cross    []models.CrossEventRegistration
	overview []models.EventOverviewRow
	users    []models.User
	// err fails every data call except FindEvent and FindUser*.
	err   error
	calls map[string]int

	gotCrossIDs []int64
	gotExclude  int64
	gotDay      models.Date
}

func (f *fakeStore) called(name string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeStore) Ping(ctx context.Context) error {
	f.called("Ping")
	return f.err
}

func (f *fakeStore) FetchEvents(ctx context.Context) ([]models.Event, error) {
	f.called("FetchEvents")
	return f.events, f.err
}

func (f *fakeStore) FindEvent(ctx context.Context, ref string) (models.Event, error) {
	f.called("FindEvent")
	for _, e := range f.events {
		if strconv.FormatInt(e.ID, 10) == ref || e.Slug == ref {
			return e, nil
		}
	}
	return models.Event{}, database.ErrNotFound
}

func (f *fakeStore) FetchEventDates(ctx context.Context, eventID int64) ([]models.EventDate, error) {
	f.called("FetchEventDates")
	return f.dates[eventID], f.err
}

func (f *fakeStore) FetchRegistrationsForEventDate(ctx context.Context, eventID int64, day models.Date) ([]models.RegistrationRecord, error) {
	f.called("FetchRegistrationsForEventDate")
	f.gotDay = day
	return f.rows, f.err
}

func (f *fakeStore) FetchCrossEventRegistrations(ctx context.Context, companionIDs []int64, excludeEventID int64) ([]models.CrossEventRegistration, error) {
	f.called("FetchCrossEventRegistrations")
	f.gotCrossIDs = companionIDs
	f.gotExclude = excludeEventID
	return f.cross, f.err
}

func (f *fakeStore) FetchEventsOverview(ctx context.Context) ([]models.EventOverviewRow, error) {
	f.called("FetchEventsOverview")
	return f.overview, f.err
}

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, database.ErrNotFound
}

func (f *fakeStore) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, database.ErrNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: testSecret,
			TokenTTL:  time.Hour,
			Roles:     []string{"ADMIN", "ORGANIZER"},
		},
		Cache: config.CacheConfig{TTL: time.Minute},
	}
}

func newTestApp(store Store, cfg *config.Config) *fiber.App {
	return newTestAppAt(store, cfg, func() time.Time { return testNow })
}

// newTestAppAt is used where the jwt library checks expiry against the wall
// clock.
func newTestAppAt(store Store, cfg *config.Config, now func() time.Time) *fiber.App {
	ctl := New(store, cfg)
	ctl.SetClock(now)

	app := fiber.New()
	app.Post("/login", ctl.Login)
	app.Get("/profile", middlewares.JWTMiddleware(cfg.Auth.JWTSecret), ctl.GetProfile)
	app.Get("/healthz", ctl.Health)
	app.Get("/staff", ctl.GetStaffEstimate)
	app.Get("/events", ctl.GetEvents)
	app.Get("/events/overview", ctl.GetEventsOverview)
	app.Get("/events/:event/dates", ctl.GetEventDates)
	app.Get("/events/:event/dates/:date/statistics", ctl.GetEventStatistics)
	app.Get("/events/:event/dates/:date/people", ctl.GetEventPeople)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
	}
	return resp.StatusCode
}

func get(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, url, nil), out)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func dob(year int) *models.Date {
	d := models.NewDate(time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC))
	return &d
}

func feriaStore() *fakeStore {
	female := models.GenderFemale
	male := models.GenderMale
	like := models.ReactionLike

	return &fakeStore{
		events: []models.Event{
			{ID: 1, Name: "Charla", Slug: "charla"},
			{ID: 7, Name: "Feria de Ciencias", Slug: "feria-de-ciencias"},
		},
		dates: map[int64][]models.EventDate{
			7: {{ID: 3, EventID: 7, DayDate: models.NewDate(time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC))}},
		},
		rows: []models.RegistrationRecord{
			{RegistrationID: 1, EventID: 7, CompanionID: 12, Gender: &female, Reaction: &like,
				DateOfBirth: dob(2000), ArrivalTime: &models.TimeOfDay{Hours: 9, Minutes: 30}},
			{RegistrationID: 2, EventID: 7, CompanionID: 11, Gender: &male,
				DateOfBirth: dob(1990), ArrivalTime: &models.TimeOfDay{Hours: 10}},
			{RegistrationID: 3, EventID: 7, CompanionID: 12, Gender: &female},
		},
		cross: []models.CrossEventRegistration{
			{CompanionID: 11, EventID: 1},
			{CompanionID: 11, EventID: 2},
		},
	}
}

type statisticsResponse struct {
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Data    analytics.Report `json:"data"`
}

func TestGetEventStatistics(t *testing.T) {
	store := feriaStore()
	app := newTestApp(store, testConfig())

	var resp statisticsResponse
	status := get(t, app, "/events/feria-de-ciencias/dates/2025-05-03/statistics", &resp)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	if resp.Date != "2025-05-03" || store.gotDay.String() != "2025-05-03" {
		t.Errorf("date = %q, store got %s", resp.Date, store.gotDay)
	}
	att := resp.Data.Attendance
	if att.TotalRegistered != 3 || att.TotalAttended != 2 || att.TotalAbsent != 1 {
		t.Errorf("attendance = %+v", att)
	}
	if got := []int64{11, 12}; len(store.gotCrossIDs) != 2 || store.gotCrossIDs[0] != got[0] || store.gotCrossIDs[1] != got[1] {
		t.Errorf("cross-event ids = %v, want %v", store.gotCrossIDs, got)
	}
	if store.gotExclude != 7 {
		t.Errorf("excluded event = %d, want 7", store.gotExclude)
	}
	if resp.Data.CrossEvent.Count != 1 {
		t.Errorf("cross-event count = %d, want 1", resp.Data.CrossEvent.Count)
	}
	if resp.Data.Ages.Summary == nil || resp.Data.Ages.Summary.Min != 26 || resp.Data.Ages.Summary.Max != 36 {
		t.Errorf("age summary = %+v", resp.Data.Ages.Summary)
	}
	if resp.Data.Reactions.Total != 1 || resp.Data.Reactions.Missing != 2 {
		t.Errorf("reactions = %+v", resp.Data.Reactions)
	}
	if resp.Data.Staff != nil {
		t.Errorf("staff = %+v, want nil unless requested", resp.Data.Staff)
	}
}

func TestGetEventStatistics_Filters(t *testing.T) {
	app := newTestApp(feriaStore(), testConfig())

	var resp statisticsResponse
	status := get(t, app, "/events/7/dates/2025-05-03/statistics?age_min=30&age_max=40&hour_min=10&hour_max=12", &resp)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if bars := resp.Data.Ages.Bars; len(bars) != 1 || bars[0].Label != "36" {
		t.Errorf("age bars = %+v, want only 36", bars)
	}
	if bars := resp.Data.ArrivalHours.Bars; len(bars) != 1 || bars[0].Label != "10" {
		t.Errorf("hour bars = %+v, want only 10", bars)
	}
}

func TestGetEventStatistics_Staff(t *testing.T) {
	app := newTestApp(feriaStore(), testConfig())

	var resp statisticsResponse
	status := get(t, app, "/events/7/dates/2025-05-03/statistics?staff=true&expected_registrations=250", &resp)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Data.Staff == nil || resp.Data.Staff.Total != 20 {
		t.Fatalf("staff = %+v, want total 20", resp.Data.Staff)
	}

	status = get(t, app, "/events/7/dates/2025-05-03/statistics?staff=true", &resp)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	// three registrants: 1 + 10 + 1 + 0
	if resp.Data.Staff == nil || resp.Data.Staff.Total != 12 || resp.Data.Staff.Params.ExpectedRegistrations != 3 {
		t.Errorf("staff = %+v, want total 12 for 3 registrants", resp.Data.Staff)
	}
}

func TestGetEventStatistics_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		field string
		error string
	}{
		{name: "age range reversed", url: "/events/7/dates/2025-05-03/statistics?age_min=50&age_max=10", field: "AgeMax"},
		{name: "hour above 24", url: "/events/7/dates/2025-05-03/statistics?hour_max=25", field: "HourMax"},
		{name: "zero denominator", url: "/events/7/dates/2025-05-03/statistics?staff=true&denom_registration=0", field: "DenomRegistration"},
		{name: "negative unforeseen", url: "/events/7/dates/2025-05-03/statistics?staff=true&staff_unforeseen=-1", field: "StaffUnforeseen"},
		{name: "expected registrations too large", url: "/events/7/dates/2025-05-03/statistics?staff=true&expected_registrations=4611686018427387903&numer_registration=3", field: "ExpectedRegistrations"},
		{name: "numerator too large", url: "/events/7/dates/2025-05-03/statistics?staff=true&numer_activities=10001", field: "NumerActivities"},
		{name: "bad date", url: "/events/7/dates/03-05-2025/statistics", error: "Invalid date, expected YYYY-MM-DD"},
		{name: "not a number", url: "/events/7/dates/2025-05-03/statistics?age_min=old", error: "Invalid query parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := feriaStore()
			app := newTestApp(store, testConfig())

			var resp errorResponse
			if status := get(t, app, tt.url, &resp); status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%+v)", status, resp)
			}
			if tt.field != "" {
				if _, ok := resp.Errors[tt.field]; !ok {
					t.Errorf("errors = %v, want entry for %s", resp.Errors, tt.field)
				}
			}
			if tt.error != "" && resp.Error != tt.error {
				t.Errorf("error = %q, want %q", resp.Error, tt.error)
			}
			if store.calls["FetchRegistrationsForEventDate"] != 0 {
				t.Error("registrations should not be fetched for a bad request")
			}
		})
	}
}

func TestGetEventStatistics_UnknownEvent(t *testing.T) {
	app := newTestApp(feriaStore(), testConfig())

	var resp errorResponse
	if status := get(t, app, "/events/feria-de-arte/dates/2025-05-03/statistics", &resp); status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if resp.Error != "Event not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGetEventStatistics_StoreFailure(t *testing.T) {
	store := feriaStore()
	store.err = &database.QueryError{Op: "fetch_registrations", Err: errors.New("connection reset")}
	app := newTestApp(store, testConfig())

	var resp errorResponse
	if status := get(t, app, "/events/7/dates/2025-05-03/statistics", &resp); status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if resp.Error != "Failed to query the data store" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGetEventStatistics_NoRegistrations(t *testing.T) {
	store := feriaStore()
	store.rows = nil
	store.cross = nil
	app := newTestApp(store, testConfig())

	var resp statisticsResponse
	if status := get(t, app, "/events/7/dates/2025-05-03/statistics", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Data.Attendance.AttendancePct != nil || resp.Data.Attendance.Badge != "Aún no hay gente inscrita en el evento." {
		t.Errorf("attendance = %+v", resp.Data.Attendance)
	}
	if resp.Data.ArrivalHours.Available {
		t.Error("arrival hours should be unavailable")
	}
}

func TestGetEventPeople(t *testing.T) {
	app := newTestApp(feriaStore(), testConfig())

	var resp struct {
		Total int              `json:"total"`
		Data  []map[string]any `json:"data"`
	}
	if status := get(t, app, "/events/7/dates/2025-05-03/people", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}

	if status := get(t, app, "/events/7/dates/2025-05-03/people?attended=true", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("attended = %d rows, want 2", resp.Total)
	}
	if resp.Data[0]["age"] != float64(26) || resp.Data[0]["arrival_time"] != "09:30:00" {
		t.Errorf("first row = %v", resp.Data[0])
	}
}

func TestGetEvents_Cached(t *testing.T) {
	store := feriaStore()
	app := newTestApp(store, testConfig())

	var resp struct {
		Data []models.Event `json:"data"`
	}
	for range 2 {
		if status := get(t, app, "/events", &resp); status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
	}
	if len(resp.Data) != 2 || resp.Data[1].Slug != "feria-de-ciencias" {
		t.Errorf("events = %+v", resp.Data)
	}
	if n := store.calls["FetchEvents"]; n != 1 {
		t.Errorf("FetchEvents called %d times, want 1", n)
	}
}

func TestGetEvents_CacheDisabled(t *testing.T) {
	store := feriaStore()
	cfg := testConfig()
	cfg.Cache.TTL = 0
	app := newTestApp(store, cfg)

	for range 2 {
		get(t, app, "/events", nil)
	}
	if n := store.calls["FetchEvents"]; n != 2 {
		t.Errorf("FetchEvents called %d times, want 2", n)
	}
}

func TestGetEventDates(t *testing.T) {
	store := feriaStore()
	app := newTestApp(store, testConfig())

	var resp struct {
		Event models.Event     `json:"event"`
		Data  []map[string]any `json:"data"`
	}
	if status := get(t, app, "/events/feria-de-ciencias/dates", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Event.ID != 7 || len(resp.Data) != 1 || resp.Data[0]["day_date"] != "2025-05-03" {
		t.Errorf("response = %+v", resp)
	}

	get(t, app, "/events/7/dates", nil)
	if n := store.calls["FetchEventDates"]; n != 1 {
		t.Errorf("FetchEventDates called %d times, want 1", n)
	}

	if status := get(t, app, "/events/99/dates", nil); status != fiber.StatusNotFound {
		t.Errorf("unknown event status = %d, want 404", status)
	}
}

func TestGetEventsOverview(t *testing.T) {
	store := feriaStore()
	store.overview = []models.EventOverviewRow{
		{EventID: 1, Name: "Charla", Capacity: 50, Registered: 40, Attended: 30},
		{EventID: 7, Name: "Feria de Ciencias", Registered: 60, Attended: 50},
	}
	app := newTestApp(store, testConfig())

	var resp struct {
		Data analytics.OverviewView `json:"data"`
	}
	if status := get(t, app, "/events/overview", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Data.TotalEvents != 2 || resp.Data.TotalRegistered != 100 || resp.Data.TotalAttended != 80 {
		t.Errorf("overview = %+v", resp.Data)
	}
}

func TestGetStaffEstimate(t *testing.T) {
	app := newTestApp(&fakeStore{}, testConfig())

	var est struct {
		Data analytics.StaffEstimate `json:"data"`
	}
	if status := get(t, app, "/staff?expected_registrations=250", &est); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if est.Data.Total != 20 || est.Data.Badge != "El número total de staff recomendado para el evento es de 20 personas" {
		t.Errorf("estimate = %+v", est.Data)
	}

	var resp errorResponse
	if status := get(t, app, "/staff", &resp); status != fiber.StatusBadRequest {
		t.Errorf("missing expected_registrations status = %d, want 400", status)
	}
	if status := get(t, app, "/staff?expected_registrations=10&denom_activities=0", &resp); status != fiber.StatusBadRequest {
		t.Errorf("zero denominator status = %d, want 400", status)
	}
	resp = errorResponse{}
	status := get(t, app, "/staff?expected_registrations=4611686018427387903&numer_registration=3&numer_activities=3", &resp)
	if status != fiber.StatusBadRequest {
		t.Errorf("oversized expected_registrations status = %d, want 400", status)
	}
	if _, ok := resp.Errors["ExpectedRegistrations"]; !ok {
		t.Errorf("errors = %v, want entry for ExpectedRegistrations", resp.Errors)
	}
}

func TestHealth(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, testConfig())
	if status := get(t, app, "/healthz", nil); status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	store.err = errors.New("connection refused")
	if status := get(t, app, "/healthz", nil); status != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}

func userStore(t *testing.T) *fakeStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &fakeStore{users: []models.User{
		{ID: 5, Email: "org@example.com", FirstName: "Luz", Role: "ORGANIZER", IsActive: true, HashedPassword: hash},
		{ID: 6, Email: "old@example.com", Role: "ADMIN", IsActive: false, HashedPassword: hash},
		{ID: 7, Email: "guest@example.com", Role: "ASSISTANT", IsActive: true, HashedPassword: hash},
	}}
}

func login(t *testing.T, app *fiber.App, email, password string, out any) int {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req, out)
}

func TestLogin(t *testing.T) {
	app := newTestAppAt(userStore(t), testConfig(), time.Now)
	before := time.Now()

	var ok struct {
		Token string `json:"token"`
	}
	if status := login(t, app, "org@example.com", "s3cret", &ok); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	token, err := jwt.Parse(ok.Token, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["id"] != float64(5) || claims["role"] != "ORGANIZER" {
		t.Errorf("claims = %v", claims)
	}
	exp, _ := claims["exp"].(float64)
	if want := before.Add(time.Hour).Unix(); int64(exp) < want || int64(exp) > want+5 {
		t.Errorf("exp = %v, want about %d", claims["exp"], want)
	}
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		status   int
	}{
		{name: "wrong password", email: "org@example.com", password: "nope", status: fiber.StatusUnauthorized},
		{name: "unknown email", email: "who@example.com", password: "s3cret", status: fiber.StatusUnauthorized},
		{name: "inactive user", email: "old@example.com", password: "s3cret", status: fiber.StatusUnauthorized},
		{name: "role not allowed", email: "guest@example.com", password: "s3cret", status: fiber.StatusUnauthorized},
		{name: "malformed email", email: "org", password: "s3cret", status: fiber.StatusBadRequest},
		{name: "empty password", email: "org@example.com", password: "", status: fiber.StatusBadRequest},
	}

	app := newTestAppAt(userStore(t), testConfig(), time.Now)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			if status := login(t, app, tt.email, tt.password, &resp); status != tt.status {
				t.Errorf("status = %d, want %d (%+v)", status, tt.status, resp)
			}
		})
	}
}

func TestLogin_NoSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = ""
	app := newTestApp(userStore(t), cfg)

	if status := login(t, app, "org@example.com", "s3cret", nil); status != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}

func TestGetProfile(t *testing.T) {
	app := newTestAppAt(userStore(t), testConfig(), time.Now)

	var tok struct {
		Token string `json:"token"`
	}
	login(t, app, "org@example.com", "s3cret", &tok)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok.Token)
	var user map[string]any
	if status := do(t, app, req, &user); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if user["email"] != "org@example.com" || user["first_name"] != "Luz" {
		t.Errorf("profile = %v", user)
	}
	if _, leaked := user["hashed_password"]; leaked {
		t.Error("profile must not expose the password hash")
	}

	if status := get(t, app, "/profile", nil); status != fiber.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", status)
	}
}

func TestFormatValidationErrorsForQuery(t *testing.T) {
	q := StatisticsQuery{AgeMin: 10, AgeMax: 5, HourMin: 0, HourMax: 24}
	errs := utils.FormatValidationErrors(utils.Validate.Struct(q))
	if errs["AgeMax"] != "Invalid gtefield" {
		t.Errorf("errors = %v", errs)
	}
	if len(errs) != 1 {
		t.Errorf("got %d errors, want 1", len(errs))
	}
}

func TestDefaultStatisticsQueryIsValid(t *testing.T) {
	if err := utils.Validate.Struct(defaultStatisticsQuery()); err != nil {
		t.Errorf("defaults: %v", err)
	}
	if err := utils.Validate.Struct(defaultStaffQuery()); err != nil {
		t.Errorf("staff defaults: %v", err)
	}
}
