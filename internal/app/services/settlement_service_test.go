package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/notification"
)

// fakeSettlementState is the in-memory database behind the fake runner.
type fakeSettlementState struct {
	users       map[string]*models.User
	cart        []models.CartCourse
	owned       map[int64]struct{}
	slots       map[int64]int
	enrollments []models.Enrollment
	ledger      []models.SettlementEntry
}

func (s *fakeSettlementState) clone() *fakeSettlementState {
	c := &fakeSettlementState{
		users: make(map[string]*models.User, len(s.users)),
		cart:  append([]models.CartCourse(nil), s.cart...),
		owned: make(map[int64]struct{}, len(s.owned)),
		slots: make(map[int64]int, len(s.slots)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k := range s.owned {
		c.owned[k] = struct{}{}
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	c.enrollments = append([]models.Enrollment(nil), s.enrollments...)
	c.ledger = append([]models.SettlementEntry(nil), s.ledger...)
	return c
}

// fakeSettlementRunner mimics transactional behavior: an error from fn
// restores the pre-transaction state.
type fakeSettlementRunner struct {
	state *fakeSettlementState
}

func (r *fakeSettlementRunner) InSettlementTx(ctx context.Context, fn func(ctx context.Context, store repositories.SettlementStore) error) error {
	snapshot := r.state.clone()
	if err := fn(ctx, &fakeSettlementStore{state: r.state}); err != nil {
		*r.state = *snapshot
		return err
	}
	return nil
}

type fakeSettlementStore struct {
	state *fakeSettlementState
}

func (f *fakeSettlementStore) StudentByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.state.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeSettlementStore) CartWithCourses(_ context.Context, _ string) ([]models.CartCourse, error) {
	return append([]models.CartCourse(nil), f.state.cart...), nil
}

func (f *fakeSettlementStore) PurchasedCourseIDs(_ context.Context, _ string) (map[int64]struct{}, error) {
	owned := make(map[int64]struct{}, len(f.state.owned))
	for k := range f.state.owned {
		owned[k] = struct{}{}
	}
	return owned, nil
}

func (f *fakeSettlementStore) ClaimSlot(_ context.Context, courseID int64) (bool, error) {
	if f.state.slots[courseID] <= 0 {
		return false, nil
	}
	f.state.slots[courseID]--
	return true, nil
}

func (f *fakeSettlementStore) AddEnrollment(_ context.Context, e models.Enrollment) error {
	f.state.enrollments = append(f.state.enrollments, e)
	return nil
}

func (f *fakeSettlementStore) RecordSettlement(_ context.Context, entry models.SettlementEntry) error {
	f.state.ledger = append(f.state.ledger, entry)
	return nil
}

func (f *fakeSettlementStore) ClearCart(_ context.Context, _ string) error {
	f.state.cart = nil
	return nil
}

type spyNotifier struct {
	receipts []notification.PurchaseReceipt
}

func (s *spyNotifier) SendPurchaseReceipt(_ context.Context, receipt notification.PurchaseReceipt) {
	s.receipts = append(s.receipts, receipt)
}

func newSettlementFixture(state *fakeSettlementState) (*SettlementService, *spyNotifier) {
	notifier := &spyNotifier{}
	return NewSettlementService(&fakeSettlementRunner{state: state}, notifier), notifier
}

func demoState() *fakeSettlementState {
	return &fakeSettlementState{
		users: map[string]*models.User{
			"student-1": {ID: "student-1", Name: "Ada", Email: "ada@example.com"},
		},
		owned: map[int64]struct{}{},
		slots: map[int64]int{},
	}
}

func TestSettleCartEmptyCart(t *testing.T) {
	state := demoState()
	svc, notifier := newSettlementFixture(state)

	_, err := svc.SettleCart(context.Background(), "student-1")

	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Empty(t, notifier.receipts)
}

func TestSettleCartUnknownStudent(t *testing.T) {
	state := demoState()
	svc, _ := newSettlementFixture(state)

	_, err := svc.SettleCart(context.Background(), "nobody")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSettleCartPurchasesAllItems(t *testing.T) {
	state := demoState()
	state.cart = []models.CartCourse{
		{CourseID: 1, Title: "Go Basics", Price: 400},
		{CourseID: 2, Title: "Advanced SQL", Price: 600},
	}
	state.slots = map[int64]int{1: 3, 2: 1}
	svc, notifier := newSettlementFixture(state)

	result, err := svc.SettleCart(context.Background(), "student-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.TotalAmount)
	assert.Equal(t, 2, result.PurchasedCount)

	assert.Len(t, state.enrollments, 2)
	assert.Equal(t, "ada@example.com", state.enrollments[0].StudentEmail)
	assert.Empty(t, state.cart, "cart should be cleared in the same transaction")
	assert.Equal(t, 2, state.slots[1])
	assert.Equal(t, 0, state.slots[2])

	require.Len(t, state.ledger, 2)
	first := state.ledger[0]
	assert.Equal(t, int64(400), first.Amount)
	assert.Equal(t, 300.0, first.TeacherShare)
	assert.Equal(t, 80.0, first.PlatformShare)
	assert.Equal(t, 20.0, first.TaxShare)

	require.Len(t, notifier.receipts, 1)
	assert.Equal(t, []string{"Go Basics", "Advanced SQL"}, notifier.receipts[0].CourseTitles)
	assert.Equal(t, int64(1000), notifier.receipts[0].TotalAmount)
}

func TestSettleCartSkipsOwnedCourses(t *testing.T) {
	state := demoState()
	state.cart = []models.CartCourse{
		{CourseID: 1, Title: "Go Basics", Price: 400},
		{CourseID: 2, Title: "Advanced SQL", Price: 600},
	}
	state.owned = map[int64]struct{}{1: {}}
	state.slots = map[int64]int{1: 5, 2: 5}
	svc, _ := newSettlementFixture(state)

	result, err := svc.SettleCart(context.Background(), "student-1")

	require.NoError(t, err)
	assert.Equal(t, int64(600), result.TotalAmount)
	assert.Equal(t, 1, result.PurchasedCount)
	assert.Len(t, state.enrollments, 1)
	assert.Equal(t, int64(2), state.enrollments[0].CourseID)
	assert.Equal(t, 5, state.slots[1], "owned course must not consume a slot")
}

func TestSettleCartAllOwnedClearsCart(t *testing.T) {
	state := demoState()
	state.cart = []models.CartCourse{
		{CourseID: 1, Title: "Go Basics", Price: 400},
	}
	state.owned = map[int64]struct{}{1: {}}
	svc, notifier := newSettlementFixture(state)

	result, err := svc.SettleCart(context.Background(), "student-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalAmount)
	assert.Equal(t, 0, result.PurchasedCount)
	assert.Empty(t, state.cart)
	assert.Empty(t, state.enrollments)
	assert.Empty(t, notifier.receipts, "nothing purchased, nothing to notify")
}

func TestSettleCartAbortsWhenSlotsExhausted(t *testing.T) {
	state := demoState()
	state.cart = []models.CartCourse{
		{CourseID: 1, Title: "Go Basics", Price: 400},
		{CourseID: 2, Title: "Advanced SQL", Price: 600},
		{CourseID: 3, Title: "System Design", Price: 900},
	}
	state.slots = map[int64]int{1: 2, 2: 0, 3: 0}
	svc, notifier := newSettlementFixture(state)

	_, err := svc.SettleCart(context.Background(), "student-1")

	require.ErrorIs(t, err, apperrors.ErrSlotsExhausted)

	details := apperrors.DetailsOf(err)
	require.NotNil(t, details)
	assert.ElementsMatch(t, []string{"Advanced SQL", "System Design"}, details["courses"])

	// Everything rolls back, including the slot claimed for course 1.
	assert.Equal(t, 2, state.slots[1])
	assert.Len(t, state.cart, 3)
	assert.Empty(t, state.enrollments)
	assert.Empty(t, state.ledger)
	assert.Empty(t, notifier.receipts)
}
