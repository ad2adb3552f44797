package impl

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory repository fakes. They enforce the same constraints the SQL
// schema does (uniqueness, ownership scoping, conditional updates), so the
// services are tested against real store semantics instead of canned answers.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

type fakeAuthRepo struct {
	mu    sync.Mutex
	auths map[string]*entity.Authentication

	findErr error
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{auths: map[string]*entity.Authentication{}}
}

func authKey(provider, providerUserID string) string {
	return provider + "|" + providerUserID
}

func (r *fakeAuthRepo) FindAuthentication(_ context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	auth, ok := r.auths[authKey(provider, providerUserID)]
	if !ok {
		return nil, repository.ErrAuthNotFound
	}
	copied := *auth

	return &copied, nil
}

func (r *fakeAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	auth.CreatedAt = time.Now()
	copied := *auth
	r.auths[authKey(auth.Provider, auth.ProviderUserID)] = &copied

	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.Profile

	findErr   error
	upsertErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	copied := *profile

	return &copied, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	profile.UpdatedAt = time.Now()
	copied := *profile
	r.profiles[profile.UserID] = &copied

	return nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken

	latestErr error
	deleteErr error
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*entity.RefreshToken{}}
}

func (r *fakeRefreshTokenRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.TokenHash] = &copied

	return nil
}

func (r *fakeRefreshTokenRepo) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[tokenHash]
	if !ok || !token.Active(time.Now()) {
		return nil, repository.ErrRefreshTokenNotFound
	}
	copied := *token

	return &copied, nil
}

func (r *fakeRefreshTokenRepo) FindLatestActiveRefreshToken(_ context.Context) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latestErr != nil {
		return nil, r.latestErr
	}
	var latest *entity.RefreshToken
	now := time.Now()
	for _, token := range r.tokens {
		if !token.Active(now) {
			continue
		}
		if latest == nil || token.CreatedAt.After(latest.CreatedAt) {
			latest = token
		}
	}
	if latest == nil {
		return nil, repository.ErrRefreshTokenNotFound
	}
	copied := *latest

	return &copied, nil
}

func (r *fakeRefreshTokenRepo) FindRefreshTokensByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RefreshToken
	for _, token := range r.tokens {
		if token.UserID == userID {
			copied := *token
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeRefreshTokenRepo) CountActiveSessionsByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.Active(now) {
			count++
		}
	}

	return count, nil
}

func (r *fakeRefreshTokenRepo) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.tokens[tokenHash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.tokens, tokenHash)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hash, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, hash)
		}
	}

	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entity.Event

	listErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*entity.Event{}}
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	copied := *event

	return &copied, nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Event, 0, len(r.events))
	for _, event := range r.events {
		copied := *event
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out, nil
}

func (r *fakeEventRepo) ListByOrganizerID(_ context.Context, organizerID uuid.UUID) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Event
	for _, event := range r.events {
		if event.OrganizerID == organizerID {
			copied := *event
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	r.events[event.ID] = &copied

	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	event.UpdatedAt = time.Now()
	copied := *event
	r.events[event.ID] = &copied

	return nil
}

func (r *fakeEventRepo) DeleteOwned(_ context.Context, id, organizerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok || event.OrganizerID != organizerID {
		return repository.ErrEventNotFound
	}
	delete(r.events, id)

	return nil
}

type fakeRegistrationRepo struct {
	mu            sync.Mutex
	registrations map[uuid.UUID]*entity.Registration

	// Joined read models need the sibling stores.
	eventRepo *fakeEventRepo
	userRepo  *fakeUserRepo

	// beforeCreate runs inside Create before the uniqueness check, letting a
	// test interleave a concurrent insert between check and write.
	beforeCreate func()
}

func newFakeRegistrationRepo(eventRepo *fakeEventRepo, userRepo *fakeUserRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		registrations: map[uuid.UUID]*entity.Registration{},
		eventRepo:     eventRepo,
		userRepo:      userRepo,
	}
}

func (r *fakeRegistrationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	registration, ok := r.registrations[id]
	if !ok {
		return nil, repository.ErrRegistrationNotFound
	}
	copied := *registration

	return &copied, nil
}

func (r *fakeRegistrationRepo) FindByEventAndUser(_ context.Context, eventID, userID uuid.UUID) (*entity.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findByEventAndUserLocked(eventID, userID)
}

func (r *fakeRegistrationRepo) findByEventAndUserLocked(eventID, userID uuid.UUID) (*entity.Registration, error) {
	for _, registration := range r.registrations {
		if registration.EventID == eventID && registration.UserID == userID {
			copied := *registration

			return &copied, nil
		}
	}

	return nil, repository.ErrRegistrationNotFound
}

func (r *fakeRegistrationRepo) Create(_ context.Context, registration *entity.Registration) error {
	if r.beforeCreate != nil {
		hook := r.beforeCreate
		r.beforeCreate = nil
		hook()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.findByEventAndUserLocked(registration.EventID, registration.UserID); err == nil {
		return repository.ErrDuplicateRegistration
	}
	if registration.ID == uuid.Nil {
		registration.ID = uuid.New()
	}
	registration.CreatedAt = time.Now()
	registration.UpdatedAt = registration.CreatedAt
	copied := *registration
	r.registrations[registration.ID] = &copied

	return nil
}

func (r *fakeRegistrationRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Registration
	for _, registration := range r.registrations {
		if registration.UserID == userID {
			copied := *registration
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeRegistrationRepo) ListApplicationsByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*entity.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scope := make(map[uuid.UUID]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		scope[id] = struct{}{}
	}

	out := []*entity.Application{}
	for _, registration := range r.registrations {
		if _, ok := scope[registration.EventID]; !ok {
			continue
		}
		event, err := r.eventRepo.FindByID(ctx, registration.EventID)
		if err != nil {
			return nil, err
		}
		applicant, err := r.userRepo.FindByID(ctx, registration.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.Application{
			RegistrationID: registration.ID,
			EventID:        registration.EventID,
			EventName:      event.Name,
			ApplicantID:    applicant.ID,
			ApplicantName:  applicant.Name,
			ApplicantEmail: applicant.Email,
			Status:         registration.Status,
			AppliedAt:      registration.CreatedAt,
		})
	}

	return out, nil
}

func (r *fakeRegistrationRepo) UpdateStatusFromPending(_ context.Context, id uuid.UUID, status entity.RegistrationStatus, eventIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	scope := make(map[uuid.UUID]struct{}, len(eventIDs))
	for _, eventID := range eventIDs {
		scope[eventID] = struct{}{}
	}

	registration, ok := r.registrations[id]
	if !ok {
		return repository.ErrRegistrationNotFound
	}
	if _, owned := scope[registration.EventID]; !owned {
		return repository.ErrRegistrationNotFound
	}
	if registration.Status != entity.RegistrationPending {
		return repository.ErrRegistrationDecided
	}
	registration.Status = status
	registration.UpdatedAt = time.Now()

	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*entity.Product{}}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		copied := *product
		out = append(out, &copied)
	}

	return out, nil
}

func (r *fakeProductRepo) ListByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, product := range r.products {
		if product.OwnerID == ownerID {
			copied := *product
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	copied := *product
	r.products[product.ID] = &copied

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied

	return nil
}

func (r *fakeProductRepo) DeleteOwned(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok || product.OwnerID != ownerID {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)

	return nil
}

// fakeRepoFactory hands out the same fake instances inside a transaction as
// outside one; the fakes have no transactional isolation to model.
type fakeRepoFactory struct {
	userRepo         *fakeUserRepo
	profileRepo      *fakeProfileRepo
	authRepo         *fakeAuthRepo
	refreshTokenRepo *fakeRefreshTokenRepo
	eventRepo        *fakeEventRepo
	registrationRepo *fakeRegistrationRepo
	productRepo      *fakeProductRepo

	// tx is set while the factory is handed out by Execute, binding the
	// registration repo to postgres-style transaction abort semantics.
	tx *fakeTxState
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository                 { return f.userRepo }
func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository           { return f.profileRepo }
func (f *fakeRepoFactory) AuthRepo() repository.AuthRepository                 { return f.authRepo }
func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.refreshTokenRepo }
func (f *fakeRepoFactory) EventRepo() repository.EventRepository               { return f.eventRepo }

func (f *fakeRepoFactory) RegistrationRepo() repository.RegistrationRepository {
	if f.tx != nil {
		return &txBoundRegistrationRepo{inner: f.registrationRepo, tx: f.tx}
	}

	return f.registrationRepo
}

func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository { return f.productRepo }

// fakeTxState marks a fake transaction as aborted once a statement inside it
// fails, the way postgres rejects everything after a constraint violation
// until the transaction block ends.
type fakeTxState struct {
	aborted bool
}

// errTxAborted mirrors SQLSTATE 25P02.
var errTxAborted = errors.New("current transaction is aborted, commands ignored until end of transaction block")

// txBoundRegistrationRepo binds the fake registration repo to one transaction.
// A failed insert aborts the transaction; every later statement through the
// same factory is rejected.
type txBoundRegistrationRepo struct {
	inner *fakeRegistrationRepo
	tx    *fakeTxState
}

func (r *txBoundRegistrationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	if r.tx.aborted {
		return nil, errTxAborted
	}

	return r.inner.FindByID(ctx, id)
}

func (r *txBoundRegistrationRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Registration, error) {
	if r.tx.aborted {
		return nil, errTxAborted
	}

	return r.inner.FindByEventAndUser(ctx, eventID, userID)
}

func (r *txBoundRegistrationRepo) Create(ctx context.Context, registration *entity.Registration) error {
	if r.tx.aborted {
		return errTxAborted
	}
	if err := r.inner.Create(ctx, registration); err != nil {
		// A rejected insert is a statement error; the transaction is done for.
		r.tx.aborted = true

		return err
	}

	return nil
}

func (r *txBoundRegistrationRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error) {
	if r.tx.aborted {
		return nil, errTxAborted
	}

	return r.inner.ListByUserID(ctx, userID)
}

func (r *txBoundRegistrationRepo) ListApplicationsByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*entity.Application, error) {
	if r.tx.aborted {
		return nil, errTxAborted
	}

	return r.inner.ListApplicationsByEventIDs(ctx, eventIDs)
}

func (r *txBoundRegistrationRepo) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, eventIDs []uuid.UUID) error {
	if r.tx.aborted {
		return errTxAborted
	}

	// A conditional update matching no rows is still a successful statement,
	// so the repo-level sentinels pass through without aborting.
	return r.inner.UpdateStatusFromPending(ctx, id, status, eventIDs)
}

type fakeTxManager struct {
	factory *fakeRepoFactory
	execErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	scoped := *m.factory
	scoped.tx = &fakeTxState{}

	return fn(&scoped)
}

type fakeHasher struct {
	strengthErr error
}

func (h *fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (h *fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func (h *fakeHasher) ValidatePasswordStrength(string) error { return h.strengthErr }

// fakeTokenService issues opaque tokens and remembers their claims, so tests
// can round-trip tokens without real signing.
type fakeTokenService struct {
	mu     sync.Mutex
	seq    int
	issued map[string]*service.Claims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: map[string]*service.Claims{}}
}

func (s *fakeTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	access := "access-" + uuid.NewString()
	refresh := "refresh-" + uuid.NewString()
	s.issued[access] = &service.Claims{UserID: userID, Role: role, Type: "access"}
	s.issued[refresh] = &service.Claims{UserID: userID, Type: "refresh"}

	return access, refresh, nil
}

func (s *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.issued[tokenString]
	if !ok {
		return nil, errors.New("token is malformed")
	}

	return claims, nil
}

func (s *fakeTokenService) HashToken(token string) string { return "hash:" + token }

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration { return 7 * 24 * time.Hour }

// fakeNotifier is a minimal working notifier: it records every published
// change and still fans out to live subscribers, so both the publish side and
// the tracker can be tested against it.
type fakeNotifier struct {
	mu          sync.Mutex
	published   []service.SessionChange
	subscribers []chan service.SessionChange
}

func newFakeNotifier() *fakeNotifier { return &fakeNotifier{} }

func (n *fakeNotifier) Publish(change service.SessionChange) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, change)
	for _, subscriber := range n.subscribers {
		subscriber <- change
	}
}

func (n *fakeNotifier) Subscribe() (<-chan service.SessionChange, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan service.SessionChange, 16)
	n.subscribers = append(n.subscribers, ch)

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, subscriber := range n.subscribers {
			if subscriber == ch {
				n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
				close(ch)

				return
			}
		}
	}
}

func (n *fakeNotifier) Close() error { return nil }

func (n *fakeNotifier) changes() []service.SessionChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]service.SessionChange, len(n.published))
	copy(out, n.published)

	return out
}

func (n *fakeNotifier) lastChange() (service.SessionChange, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.published) == 0 {
		return service.SessionChange{}, false
	}

	return n.published[len(n.published)-1], true
}

type fakeQRCodeService struct{}

func (s *fakeQRCodeService) GenerateTicketQR(registrationID uuid.UUID) ([]byte, error) {
	return []byte("qr:" + registrationID.String()), nil
}

func (s *fakeQRCodeService) ParseTicketQR(qrData string) (uuid.UUID, error) {
	if !strings.HasPrefix(qrData, "qr:") {
		return uuid.Nil, errors.New("not a ticket payload")
	}

	return uuid.Parse(strings.TrimPrefix(qrData, "qr:"))
}

// fakeResolver implements ProfileUsecase for tracker tests. Resolution can be
// gated on a channel to model a slow lookup racing a newer session change.
type fakeResolver struct {
	mu    sync.Mutex
	views map[uuid.UUID]*entity.UserView
	gate  chan struct{}
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{views: map[uuid.UUID]*entity.UserView{}}
}

func (r *fakeResolver) setView(view *entity.UserView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[view.ID] = view
}

func (r *fakeResolver) Resolve(_ context.Context, userID uuid.UUID) (*entity.UserView, error) {
	r.mu.Lock()
	gate := r.gate
	view, ok := r.views[userID]
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, errors.New("unknown user")
	}

	return view, nil
}

func (r *fakeResolver) CompleteOnboarding(context.Context, *usecase.CompleteOnboardingInput) (*entity.UserView, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeResolver) SaveProfile(context.Context, *usecase.CompleteOnboardingInput) (*entity.UserView, error) {
	return nil, errors.New("not implemented")
}
