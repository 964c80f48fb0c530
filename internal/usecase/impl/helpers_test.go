package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/repository"
	"hearth/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory repository fakes. They share state through fakeStore so the
// transaction manager fake can hand out bound repositories the same way the
// GORM factory does.

type fakeStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*entity.User
	households   map[uuid.UUID]*entity.Household
	members      map[uuid.UUID]*entity.HouseholdMember
	invitations  map[uuid.UUID]*entity.HouseholdInvitation
	categories   map[uuid.UUID]*entity.Category
	transactions map[uuid.UUID]*entity.Transaction
	budgets      map[uuid.UUID]*entity.Budget
	events       map[uuid.UUID]*entity.Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uuid.UUID]*entity.User),
		households:   make(map[uuid.UUID]*entity.Household),
		members:      make(map[uuid.UUID]*entity.HouseholdMember),
		invitations:  make(map[uuid.UUID]*entity.HouseholdInvitation),
		categories:   make(map[uuid.UUID]*entity.Category),
		transactions: make(map[uuid.UUID]*entity.Transaction),
		budgets:      make(map[uuid.UUID]*entity.Budget),
		events:       make(map[uuid.UUID]*entity.Event),
	}
}

// --- user repository ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		cloned := *u
		return &cloned, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		cloned := *u
		all = append(all, &cloned)
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, u := range r.store.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domainerrors.ErrEmailAlreadyRegistered
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.store.users[user.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, u := range r.store.users {
		if u.Email == user.Email && u.ID != user.ID {
			return domainerrors.ErrEmailAlreadyRegistered
		}
	}
	user.UpdatedAt = time.Now()
	cloned := *user
	r.store.users[user.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)
	return nil
}

// --- household repository ---

type fakeHouseholdRepo struct{ store *fakeStore }

func (r *fakeHouseholdRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Household, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	h, ok := r.store.households[id]
	if !ok {
		return nil, repository.ErrHouseholdNotFound
	}
	cloned := *h
	cloned.Members = nil
	for _, m := range r.store.members {
		if m.HouseholdID == id {
			mc := *m
			cloned.Members = append(cloned.Members, &mc)
		}
	}
	return &cloned, nil
}

func (r *fakeHouseholdRepo) FindByName(_ context.Context, name string) (*entity.Household, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, h := range r.store.households {
		if h.Name == name {
			cloned := *h
			return &cloned, nil
		}
	}
	return nil, repository.ErrHouseholdNotFound
}

func (r *fakeHouseholdRepo) Create(_ context.Context, household *entity.Household) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, h := range r.store.households {
		if h.Name == household.Name {
			return repository.ErrDuplicateHouseholdName
		}
	}
	if household.ID == uuid.Nil {
		household.ID = uuid.New()
	}
	household.CreatedAt = time.Now()
	household.UpdatedAt = household.CreatedAt
	cloned := *household
	cloned.Members = nil
	r.store.households[household.ID] = &cloned
	return nil
}

func (r *fakeHouseholdRepo) AddMember(_ context.Context, member *entity.HouseholdMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.members {
		if m.HouseholdID == member.HouseholdID && m.UserID == member.UserID {
			return repository.ErrDuplicateMember
		}
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	member.CreatedAt = time.Now()
	cloned := *member
	r.store.members[member.ID] = &cloned
	return nil
}

func (r *fakeHouseholdRepo) FindMember(_ context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.members {
		if m.HouseholdID == householdID && m.UserID == userID {
			cloned := *m
			return &cloned, nil
		}
	}
	return nil, repository.ErrMemberNotFound
}

func (r *fakeHouseholdRepo) CountMembers(_ context.Context, householdID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, m := range r.store.members {
		if m.HouseholdID == householdID {
			count++
		}
	}
	return count, nil
}

// --- invitation repository ---

type fakeInvitationRepo struct{ store *fakeStore }

func (r *fakeInvitationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.HouseholdInvitation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if inv, ok := r.store.invitations[id]; ok {
		cloned := *inv
		return &cloned, nil
	}
	return nil, repository.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) FindByToken(_ context.Context, token string) (*entity.HouseholdInvitation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.invitations {
		if inv.Token == token {
			cloned := *inv
			return &cloned, nil
		}
	}
	return nil, repository.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) ListByHousehold(_ context.Context, householdID uuid.UUID) ([]*entity.HouseholdInvitation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.HouseholdInvitation
	for _, inv := range r.store.invitations {
		if inv.HouseholdID == householdID {
			cloned := *inv
			out = append(out, &cloned)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *entity.HouseholdInvitation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	invitation.CreatedAt = time.Now()
	invitation.UpdatedAt = invitation.CreatedAt
	cloned := *invitation
	r.store.invitations[invitation.ID] = &cloned
	return nil
}

func (r *fakeInvitationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invitations[id]
	if !ok {
		return repository.ErrInvitationNotFound
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	return nil
}

// --- category repository ---

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) FindByID(_ context.Context, householdID, id uuid.UUID) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.categories[id]; ok && c.HouseholdID == householdID {
		cloned := *c
		return &cloned, nil
	}
	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) ListByHousehold(_ context.Context, householdID uuid.UUID, categoryType *entity.TransactionType) ([]*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.store.categories {
		if c.HouseholdID != householdID {
			continue
		}
		if categoryType != nil && c.Type != *categoryType {
			continue
		}
		cloned := *c
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	cloned := *category
	r.store.categories[category.ID] = &cloned
	return nil
}

// --- transaction repository ---

type fakeTransactionRepo struct{ store *fakeStore }

func (r *fakeTransactionRepo) FindByID(_ context.Context, householdID, id uuid.UUID) (*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t, ok := r.store.transactions[id]; ok && t.HouseholdID == householdID {
		cloned := *t
		return &cloned, nil
	}
	return nil, repository.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) ListByHousehold(_ context.Context, householdID uuid.UUID, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.HouseholdID != householdID {
			continue
		}
		if filter.CategoryID != nil && t.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		cloned := *t
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	cloned := *transaction
	r.store.transactions[transaction.ID] = &cloned
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.transactions[transaction.ID]
	if !ok || existing.HouseholdID != transaction.HouseholdID {
		return repository.ErrTransactionNotFound
	}
	transaction.UpdatedAt = time.Now()
	cloned := *transaction
	r.store.transactions[transaction.ID] = &cloned
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, householdID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t, ok := r.store.transactions[id]; !ok || t.HouseholdID != householdID {
		return repository.ErrTransactionNotFound
	}
	delete(r.store.transactions, id)
	return nil
}

// --- budget repository ---

type fakeBudgetRepo struct{ store *fakeStore }

func (r *fakeBudgetRepo) FindByID(_ context.Context, householdID, id uuid.UUID) (*entity.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if b, ok := r.store.budgets[id]; ok && b.HouseholdID == householdID {
		cloned := *b
		return &cloned, nil
	}
	return nil, repository.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) FindByPeriod(_ context.Context, householdID, categoryID uuid.UUID, month, year int) (*entity.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.budgets {
		if b.HouseholdID == householdID && b.CategoryID == categoryID && b.Month == month && b.Year == year {
			cloned := *b
			return &cloned, nil
		}
	}
	return nil, repository.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) ListByHousehold(_ context.Context, householdID uuid.UUID, month, year *int) ([]*entity.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Budget
	for _, b := range r.store.budgets {
		if b.HouseholdID != householdID {
			continue
		}
		if month != nil && b.Month != *month {
			continue
		}
		if year != nil && b.Year != *year {
			continue
		}
		cloned := *b
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = budget.CreatedAt
	cloned := *budget
	r.store.budgets[budget.ID] = &cloned
	return nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.budgets[budget.ID]
	if !ok || existing.HouseholdID != budget.HouseholdID {
		return repository.ErrBudgetNotFound
	}
	budget.UpdatedAt = time.Now()
	cloned := *budget
	r.store.budgets[budget.ID] = &cloned
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, householdID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if b, ok := r.store.budgets[id]; !ok || b.HouseholdID != householdID {
		return repository.ErrBudgetNotFound
	}
	delete(r.store.budgets, id)
	return nil
}

// --- event repository ---

type fakeEventRepo struct{ store *fakeStore }

func (r *fakeEventRepo) FindByID(_ context.Context, householdID, id uuid.UUID) (*entity.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e, ok := r.store.events[id]; ok && e.HouseholdID == householdID {
		cloned := *e
		return &cloned, nil
	}
	return nil, repository.ErrEventNotFound
}

func (r *fakeEventRepo) ListByHousehold(_ context.Context, householdID uuid.UUID, from, to *time.Time) ([]*entity.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Event
	for _, e := range r.store.events {
		if e.HouseholdID != householdID {
			continue
		}
		if from != nil && e.StartTime.Before(*from) {
			continue
		}
		if to != nil && !e.StartTime.Before(*to) {
			continue
		}
		cloned := *e
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	cloned := *event
	r.store.events[event.ID] = &cloned
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.events[event.ID]
	if !ok || existing.HouseholdID != event.HouseholdID {
		return repository.ErrEventNotFound
	}
	event.UpdatedAt = time.Now()
	cloned := *event
	r.store.events[event.ID] = &cloned
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, householdID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e, ok := r.store.events[id]; !ok || e.HouseholdID != householdID {
		return repository.ErrEventNotFound
	}
	delete(r.store.events, id)
	return nil
}

// --- transaction manager ---

type fakeTxManager struct{ store *fakeStore }

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{store: m.store})
}

type fakeRepoFactory struct{ store *fakeStore }

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeRepoFactory) NewHouseholdRepository() repository.HouseholdRepository {
	return &fakeHouseholdRepo{store: f.store}
}

func (f *fakeRepoFactory) NewInvitationRepository() repository.InvitationRepository {
	return &fakeInvitationRepo{store: f.store}
}

func (f *fakeRepoFactory) NewCategoryRepository() repository.CategoryRepository {
	return &fakeCategoryRepo{store: f.store}
}

func (f *fakeRepoFactory) NewTransactionRepository() repository.TransactionRepository {
	return &fakeTransactionRepo{store: f.store}
}

func (f *fakeRepoFactory) NewBudgetRepository() repository.BudgetRepository {
	return &fakeBudgetRepo{store: f.store}
}

func (f *fakeRepoFactory) NewEventRepository() repository.EventRepository {
	return &fakeEventRepo{store: f.store}
}

// --- domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func (fakeHasher) ValidateStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrValidationFailed.WithDetails("password too short")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(email string) (string, error) {
	return "token-for-" + email, nil
}

func (fakeTokenService) GenerateTokenWithTTL(email string, _ time.Duration) (string, error) {
	return "token-for-" + email, nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	email, ok := strings.CutPrefix(tokenString, "token-for-")
	if !ok {
		return nil, domainerrors.ErrTokenMalformed
	}
	claims := &service.Claims{}
	claims.Subject = email
	return claims, nil
}

func (fakeTokenService) GetAccessTokenDuration() time.Duration { return time.Hour }

type fakeQRCodeService struct{}

func (fakeQRCodeService) GenerateInvitationQR(_ string) ([]byte, error) {
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (fakeQRCodeService) InvitationURL(token string) string {
	return "https://hearth.test/households/invitations/accept?token=" + token
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
