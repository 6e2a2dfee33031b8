package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

type registrationFixture struct {
	users  *fakeUserRepo
	events *fakeEventRepo
	uc     *RegistrationUsecase
}

func newRegistrationFixture() *registrationFixture {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	return &registrationFixture{
		users:  users,
		events: events,
		uc:     NewRegistrationUsecase(users, events, &seqUUID{}, nopLogger{}),
	}
}

func (f *registrationFixture) student(id string) *entity.User {
	u := &entity.User{ID: id, Name: "Student " + id, Email: id + "@campus.edu", Role: entity.UserRoleStudent}
	f.users.put(u)
	return u
}

func (f *registrationFixture) event(id, organizerID string) *entity.Event {
	e := &entity.Event{ID: id, Title: "Event " + id, Location: "Hall A", OrganizerID: organizerID, Date: time.Now().Add(48 * time.Hour)}
	f.events.put(e)
	return e
}

func TestRegisterForEvent_ReturnsCodeAndStoresEntry(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	code, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	u, _ := f.users.GetUserByID(context.Background(), "s1")
	require.Len(t, u.RegisteredEvents, 1)
	assert.Equal(t, entity.RegistrationEntry{EventID: "e1", RegistrationCode: code}, u.RegisteredEvents[0])
}

func TestRegisterForEvent_Errors(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	_, err := f.uc.RegisterForEvent(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = f.uc.RegisterForEvent(context.Background(), "ghost", "e1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)
	_, err = f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.EqualError(t, err, "Already registered for this event")
}

func TestRegisterForEvent_StorageFailure(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	// fail the conditional append only
	uc := NewRegistrationUsecase(&failingAppendRepo{fakeUserRepo: f.users}, f.events, &seqUUID{}, nopLogger{})
	_, err := uc.RegisterForEvent(context.Background(), "s1", "e1")
	assert.ErrorIs(t, err, ErrStorage)
}

type failingAppendRepo struct{ *fakeUserRepo }

func (r *failingAppendRepo) AppendRegistration(ctx context.Context, userID string, entry entity.RegistrationEntry) (bool, error) {
	return false, errors.New("connection reset")
}

func TestRegisterForEvent_ConcurrentRequestsLeaveOneEntry(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dups      int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrDuplicateRegistration):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, dups)
	u, _ := f.users.GetUserByID(context.Background(), "s1")
	assert.Len(t, u.RegisteredEvents, 1)
}

func TestVerifyRegistrationCode_RoundTrip(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	code, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)

	v, err := f.uc.VerifyRegistrationCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, "e1", v.Event.ID)
	assert.Equal(t, "Hall A", v.Event.Location)
	assert.Equal(t, "s1", v.User.ID)
	assert.Equal(t, entity.UserRoleStudent, v.User.Role)

	// verification has no side effects
	again, err := f.uc.VerifyRegistrationCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, v, again)
}

func TestVerifyRegistrationCode_Errors(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	_, err := f.uc.VerifyRegistrationCode(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "QR code is required")

	_, err = f.uc.VerifyRegistrationCode(context.Background(), "not-a-code")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyRegistrationCode_OrphanedEvent(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	code, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)
	require.NoError(t, f.events.DeleteEvent(context.Background(), "e1"))

	_, err = f.uc.VerifyRegistrationCode(context.Background(), code)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCorruptEntriesAreIgnored(t *testing.T) {
	f := newRegistrationFixture()
	u := f.student("s1")
	f.event("e1", "o1")
	f.event("e2", "o1")
	u.RegisteredEvents = []entity.RegistrationEntry{
		{EventID: "e2"},             // missing code
		{RegistrationCode: "stray"}, // missing event
		{EventID: "e1", RegistrationCode: "code-e1"},
	}
	f.users.put(u)

	v, err := f.uc.VerifyRegistrationCode(context.Background(), "code-e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", v.Event.ID)

	_, err = f.uc.VerifyRegistrationCode(context.Background(), "stray")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// the corrupt e2 entry does not count as a registration
	code, err := f.uc.GetRegistrationCode(context.Background(), "s1", "e2")
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Empty(t, code)

	list, err := f.uc.ListRegisteredEvents(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "e1", list[0].EventID)

	_, err = f.uc.RegisterForEvent(context.Background(), "s1", "e2")
	require.NoError(t, err)
}

func TestGetRegistrationCode(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")

	_, err := f.uc.GetRegistrationCode(context.Background(), "s1", "e1")
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.EqualError(t, err, "User is not registered for this event")

	code, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)
	got, err := f.uc.GetRegistrationCode(context.Background(), "s1", "e1")
	require.NoError(t, err)
	assert.Equal(t, code, got)
}

func TestListRegisteredEvents_KeepsOrphansWithNilEvent(t *testing.T) {
	f := newRegistrationFixture()
	f.student("s1")
	f.event("e1", "o1")
	f.event("e2", "o1")

	_, err := f.uc.RegisterForEvent(context.Background(), "s1", "e1")
	require.NoError(t, err)
	_, err = f.uc.RegisterForEvent(context.Background(), "s1", "e2")
	require.NoError(t, err)
	require.NoError(t, f.events.DeleteEvent(context.Background(), "e1"))

	list, err := f.uc.ListRegisteredEvents(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Event)
	require.NotNil(t, list[1].Event)
	assert.Equal(t, "e2", list[1].Event.ID)
}

// A student registers for a pending event, the organizer verifies the code,
// the admin approves, and a second registration is refused.
func TestRegistrationLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture()
	f.student("s1")
	f.users.put(&entity.User{ID: "o1", Name: "Org", Email: "o1@campus.edu", Role: entity.UserRoleOrganizer})

	events := NewEventUsecase(f.events, &seqUUID{}, nil, nopLogger{})
	date := time.Now().Add(72 * time.Hour)
	e1, err := events.CreateEvent(ctx, "o1", usecasecontract.EventInput{
		Title: "Hackathon", Description: "24h build", Date: &date,
		StartTime: "09:00", EndTime: "21:00", Location: "Lab 3", Category: "Technology",
	})
	require.NoError(t, err)
	assert.False(t, e1.IsApproved)

	c1, err := f.uc.RegisterForEvent(ctx, "s1", e1.ID)
	require.NoError(t, err)

	v, err := f.uc.VerifyRegistrationCode(ctx, c1)
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", v.Event.Title)
	assert.Equal(t, "Lab 3", v.Event.Location)
	assert.Equal(t, "s1@campus.edu", v.User.Email)

	public, err := events.ListPublicEvents(ctx, usecasecontract.EventQuery{})
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = events.ApproveEvent(ctx, e1.ID)
	require.NoError(t, err)
	public, err = events.ListPublicEvents(ctx, usecasecontract.EventQuery{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, e1.ID, public[0].ID)

	_, err = f.uc.RegisterForEvent(ctx, "s1", e1.ID)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}
