package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

// In-memory collaborators for usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	// failNext makes the next call return this error.
	failNext error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.RegisteredEvents = append([]entity.RegistrationEntry(nil), u.RegisteredEvents...)
	return &c
}

func (r *fakeUserRepo) takeErr() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return contract.ErrDuplicateKey
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, contract.ErrDocumentNotFound
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.users[user.ID]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	next := cloneUser(user)
	// registrations and reset state are owned by their dedicated writes
	next.RegisteredEvents = cur.RegisteredEvents
	next.ResetPasswordToken, next.ResetPasswordExpire = cur.ResetPasswordToken, cur.ResetPasswordExpire
	r.users[user.ID] = next
	return cloneUser(next), nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return contract.ErrDocumentNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return contract.ErrDocumentNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) AppendRegistration(ctx context.Context, userID string, entry entity.RegistrationEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeErr(); err != nil {
		return false, err
	}
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for _, e := range u.RegisteredEvents {
		if e.Valid() && e.EventID == entry.EventID {
			return false, nil
		}
	}
	u.RegisteredEvents = append(u.RegisteredEvents, entry)
	return true, nil
}

func (r *fakeUserRepo) GetUserByRegistrationCode(ctx context.Context, code string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		for _, e := range u.RegisteredEvents {
			if e.RegistrationCode == code {
				return cloneUser(u), nil
			}
		}
	}
	return nil, contract.ErrDocumentNotFound
}

func (r *fakeUserRepo) SetPasswordResetToken(ctx context.Context, id string, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return contract.ErrDocumentNotFound
	}
	u.ResetPasswordToken, u.ResetPasswordExpire = &tokenHash, &expiresAt
	return nil
}

func (r *fakeUserRepo) ClearPasswordResetToken(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return contract.ErrDocumentNotFound
	}
	u.ResetPasswordToken, u.ResetPasswordExpire = nil, nil
	return nil
}

func (r *fakeUserRepo) GetUserByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == tokenHash &&
			u.ResetPasswordExpire != nil && u.ResetPasswordExpire.After(now) {
			return cloneUser(u), nil
		}
	}
	return nil, contract.ErrDocumentNotFound
}

// put stores u directly, bypassing uniqueness checks.
func (r *fakeUserRepo) put(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = cloneUser(u)
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*entity.Event
	// lastFilter records the options of the latest GetEvents call.
	lastFilter *contract.EventFilterOptions
	listCalls  int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*entity.Event{}}
}

func (r *fakeEventRepo) CreateEvent(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *event
	r.events[event.ID] = &c
	return nil
}

func (r *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	c := *e
	return &c, nil
}

func (r *fakeEventRepo) GetEvents(ctx context.Context, opts *contract.EventFilterOptions) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = opts
	r.listCalls++
	var out []*entity.Event
	for _, e := range r.events {
		if opts.Approved != nil && e.IsApproved != *opts.Approved {
			continue
		}
		if opts.OrganizerID != "" && e.OrganizerID != opts.OrganizerID {
			continue
		}
		if opts.Category != "" && e.Category != opts.Category {
			continue
		}
		if opts.Keyword != "" {
			k := strings.ToLower(opts.Keyword)
			if !strings.Contains(strings.ToLower(e.Title), k) && !strings.Contains(strings.ToLower(e.Description), k) {
				continue
			}
		}
		if opts.DateFrom != nil && e.Date.Before(*opts.DateFrom) {
			continue
		}
		if opts.DateBefore != nil && !e.Date.Before(*opts.DateBefore) {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			e.Title = v.(string)
		case "description":
			e.Description = v.(string)
		case "start_time":
			e.StartTime = v.(string)
		case "end_time":
			e.EndTime = v.(string)
		case "location":
			e.Location = v.(string)
		case "category":
			e.Category = v.(string)
		case "event_image":
			e.EventImage = v.(string)
		case "date":
			e.Date = v.(time.Time)
		case "updated_at":
			e.UpdatedAt = v.(time.Time)
		default:
			return nil, fmt.Errorf("unexpected update field %q", k)
		}
	}
	c := *e
	return &c, nil
}

func (r *fakeEventRepo) SetApproval(ctx context.Context, id string, approved bool) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	e.IsApproved = approved
	c := *e
	return &c, nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return contract.ErrDocumentNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) CountEvents(ctx context.Context, approved *bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.events {
		if approved == nil || e.IsApproved == *approved {
			n++
		}
	}
	return n, nil
}

func (r *fakeEventRepo) CountByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, e := range r.events {
		counts[e.Category]++
	}
	var out []entity.CategoryCount
	for name, v := range counts {
		out = append(out, entity.CategoryCount{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeEventRepo) CountByMonth(ctx context.Context) ([]entity.MonthCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, e := range r.events {
		counts[e.CreatedAt.UTC().Format("2006-01")]++
	}
	var out []entity.MonthCount
	for m, v := range counts {
		out = append(out, entity.MonthCount{Month: m, Events: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *fakeEventRepo) put(e *entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *e
	r.events[e.ID] = &c
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.Token{}}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *token
	r.tokens[token.ID] = &c
	return nil
}

func (r *fakeTokenRepo) GetTokenByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			c := *t
			return &c, nil
		}
	}
	return nil, contract.ErrDocumentNotFound
}

func (r *fakeTokenRepo) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[tokenID]
	if !ok {
		return contract.ErrDocumentNotFound
	}
	t.TokenHash, t.ExpiresAt = tokenHash, expiry
	return nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok {
		return contract.ErrDocumentNotFound
	}
	t.Revoke = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID && t.TokenType == tokenType {
			t.Revoke = true
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *category
	r.categories[category.ID] = &c
	return nil
}

func (r *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, contract.ErrDocumentNotFound
}

func (r *fakeCategoryRepo) GetAllCategories(ctx context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) UpdateCategory(ctx context.Context, id string, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	c.Name = name
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return contract.ErrDocumentNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ReplaceAll(ctx context.Context, categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = map[string]*entity.Category{}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return nil
}

func (r *fakeCategoryRepo) CountCategories(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.categories)), nil
}

type fakeSettingRepo struct {
	settings map[string]*entity.SystemSetting
}

func (r *fakeSettingRepo) GetAllSettings(ctx context.Context) ([]*entity.SystemSetting, error) {
	var out []*entity.SystemSetting
	for _, s := range r.settings {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSettingRepo) GetSettingByID(ctx context.Context, id string) (*entity.SystemSetting, error) {
	s, ok := r.settings[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	return s, nil
}

func (r *fakeSettingRepo) UpdateSettingValue(ctx context.Context, id string, value string) (*entity.SystemSetting, error) {
	s, ok := r.settings[id]
	if !ok {
		return nil, contract.ErrDocumentNotFound
	}
	s.SettingValue = value
	return s, nil
}

func (r *fakeSettingRepo) UpsertSetting(ctx context.Context, setting *entity.SystemSetting) error {
	r.settings[setting.ID] = setting
	return nil
}

// seqUUID yields distinct ids; fixed, when set, is returned every time.
type seqUUID struct {
	n     atomic.Int64
	fixed string
}

func (g *seqUUID) NewUUID() string {
	if g.fixed != "" {
		return g.fixed
	}
	return fmt.Sprintf("id-%d", g.n.Add(1))
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}
func (fakeHasher) HashString(s string) string     { return "sha:" + s }
func (fakeHasher) CheckHash(s, hash string) bool { return hash == "sha:"+s }

// fakeJWT encodes claims as "<kind>|<user>|<role>|<n>".
type fakeJWT struct{ n atomic.Int64 }

func (j *fakeJWT) gen(kind, userID string, role entity.UserRole) string {
	return fmt.Sprintf("%s|%s|%s|%d", kind, userID, role, j.n.Add(1))
}

func (j *fakeJWT) parse(kind, token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 || parts[0] != kind {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2])}, nil
}

func (j *fakeJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return j.gen("access", userID, role), nil
}
func (j *fakeJWT) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	return j.gen("refresh", userID, role), nil
}
func (j *fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	return j.parse("access", token)
}
func (j *fakeJWT) ParseRefreshToken(token string) (*entity.Claims, error) {
	return j.parse("refresh", token)
}

type sentMail struct{ to, subject, body string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (u *fakeUploader) UploadImage(ctx context.Context, dataURI string, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, folder)
	return "https://cdn.example.com/" + folder + "/img.png", nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                      { return "http://localhost:4000" }
func (fakeConfig) GetFrontendURL() string                     { return "http://localhost:5173" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration        { return time.Hour }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration       { return 24 * time.Hour }
func (fakeConfig) GetPasswordResetTokenExpiry() time.Duration { return 10 * time.Minute }

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

type fakeRandom struct{ n atomic.Int64 }

func (r *fakeRandom) GenerateRandomToken(n int) (string, error) {
	return fmt.Sprintf("rand-%d", r.n.Add(1)), nil
}

func (r *fakeRandom) GenerateHexToken(n int) (string, error) {
	return fmt.Sprintf("%064x", r.n.Add(1)), nil
}

// memCache is an in-process IEventCache.
type memCache struct {
	mu     sync.Mutex
	events map[string]*entity.Event
	lists  map[string][]*entity.Event
}

func newMemCache() *memCache {
	return &memCache{events: map[string]*entity.Event{}, lists: map[string][]*entity.Event{}}
}

func (c *memCache) GetEvent(ctx context.Context, id string) (*entity.Event, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.events[id]
	return e, ok, nil
}

func (c *memCache) SetEvent(ctx context.Context, event *entity.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[event.ID] = event
	return nil
}

func (c *memCache) InvalidateEvent(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, id)
	return nil
}

func (c *memCache) GetEventList(ctx context.Context, key string) ([]*entity.Event, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.lists[key]
	return l, ok, nil
}

func (c *memCache) SetEventList(ctx context.Context, key string, events []*entity.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[key] = events
	return nil
}

func (c *memCache) InvalidateEventLists(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = map[string][]*entity.Event{}
	return nil
}
