package service

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/enum"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

// quickCashBases are the round tender shortcuts offered alongside the
// exact amount; only those covering the total are shown.
var quickCashBases = []int64{50000, 100000, 150000, 200000, 500000}

type checkoutFlow struct {
	state     enum.CheckoutState
	method    enum.PaymentMethod
	tendered  int64
	hasTender bool
}

// CheckoutService drives the payment flow: one modal checkout per
// operator, from opening the flow over a non-empty cart to recording
// the transaction and clearing the cart.
type CheckoutService struct {
	carts  *CartService
	ledger repository.LedgerRepository
	delay  time.Duration

	mu    sync.Mutex
	flows map[string]*checkoutFlow
}

// NewCheckoutService creates a new checkout service. delay is the
// simulated settlement latency between confirm and completion.
func NewCheckoutService(carts *CartService, ledger repository.LedgerRepository, delay time.Duration) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		ledger: ledger,
		delay:  delay,
		flows:  make(map[string]*checkoutFlow),
	}
}

// CheckoutStatus is the observable state of the open flow.
type CheckoutStatus struct {
	State          enum.CheckoutState `json:"state"`
	Method         enum.PaymentMethod `json:"method"`
	Totals         entity.CartTotals  `json:"totals"`
	Tendered       int64              `json:"tendered"`
	Change         int64              `json:"change"`
	Shortfall      int64              `json:"shortfall"`
	ConfirmEnabled bool               `json:"confirm_enabled"`
	QuickAmounts   []int64            `json:"quick_amounts"`
}

// Start opens a checkout over the live cart. The cart must be
// non-empty; a flow already processing cannot be replaced.
func (s *CheckoutService) Start(ctx context.Context, userID string) (*CheckoutStatus, error) {
	totals, err := s.carts.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if totals.Subtotal == 0 {
		return nil, apperror.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if flow, ok := s.flows[userID]; ok && flow.state == enum.CheckoutProcessing {
		return nil, apperror.ErrCheckoutProcessing
	}
	flow := &checkoutFlow{state: enum.CheckoutIdle, method: enum.PaymentCash}
	s.flows[userID] = flow
	return s.status(flow, totals), nil
}

// Status reports the open flow. The flow reads the live cart, so totals
// always reflect the cart as it stands.
func (s *CheckoutService) Status(ctx context.Context, userID string) (*CheckoutStatus, error) {
	totals, err := s.carts.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return nil, apperror.ErrNoActiveCheckout
	}
	return s.status(flow, totals), nil
}

// SelectMethod picks the payment method for the open flow.
func (s *CheckoutService) SelectMethod(ctx context.Context, userID string, method enum.PaymentMethod) (*CheckoutStatus, error) {
	totals, err := s.carts.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return nil, apperror.ErrNoActiveCheckout
	}
	if flow.state == enum.CheckoutProcessing {
		return nil, apperror.ErrCheckoutProcessing
	}

	flow.method = method
	flow.state = enum.CheckoutMethodSelected
	return s.status(flow, totals), nil
}

// SetTendered records the cash amount handed over. Only meaningful for
// the cash method; a negative amount is rejected.
func (s *CheckoutService) SetTendered(ctx context.Context, userID string, amount int64) (*CheckoutStatus, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Tendered amount must not be negative")
	}

	totals, err := s.carts.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return nil, apperror.ErrNoActiveCheckout
	}
	if flow.state == enum.CheckoutProcessing {
		return nil, apperror.ErrCheckoutProcessing
	}

	flow.tendered = amount
	flow.hasTender = true
	flow.state = enum.CheckoutValidating
	return s.status(flow, totals), nil
}

// Confirm finalizes the payment: it validates tender sufficiency,
// enters the exclusive processing state, waits the simulated settlement
// latency, records the transaction and removes the charged lines from
// the cart. Lines added while the payment settled are kept. The context
// is honored only at entry; once processing starts the flow runs to
// completion.
func (s *CheckoutService) Confirm(ctx context.Context, userID string) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}
	totals := cart.Totals()

	s.mu.Lock()
	flow, ok := s.flows[userID]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.ErrNoActiveCheckout
	}
	if flow.state == enum.CheckoutProcessing {
		s.mu.Unlock()
		return nil, apperror.ErrCheckoutProcessing
	}
	if flow.method.RequiresTender() && flow.tendered < totals.Total {
		flow.state = enum.CheckoutValidating
		s.mu.Unlock()
		return nil, apperror.NewInsufficientPaymentError(totals.Total - flow.tendered)
	}
	flow.state = enum.CheckoutProcessing
	method := flow.method
	tendered := flow.tendered
	s.mu.Unlock()

	// Simulated settlement. No cancellation once processing started.
	time.Sleep(s.delay)

	tx := entity.NewTransaction(cart, method, tendered, time.Now())
	if err := s.ledger.Record(ctx, tx); err != nil {
		s.mu.Lock()
		flow.state = enum.CheckoutValidating
		s.mu.Unlock()
		return nil, err
	}

	s.carts.deduct(userID, cart.Lines)

	s.mu.Lock()
	delete(s.flows, userID)
	s.mu.Unlock()

	return tx, nil
}

// Cancel abandons the open flow, discarding its method and tendered
// amount without touching the cart. A processing flow cannot be
// cancelled.
func (s *CheckoutService) Cancel(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return apperror.ErrNoActiveCheckout
	}
	if !flow.state.CanCancel() {
		return apperror.ErrCheckoutProcessing
	}
	delete(s.flows, userID)
	return nil
}

// status computes the derived fields for the current flow and totals.
// Callers must hold s.mu.
func (s *CheckoutService) status(flow *checkoutFlow, totals entity.CartTotals) *CheckoutStatus {
	st := &CheckoutStatus{
		State:        flow.state,
		Method:       flow.method,
		Totals:       totals,
		Tendered:     flow.tendered,
		QuickAmounts: QuickAmounts(totals.Total),
	}

	if flow.method.RequiresTender() {
		if flow.tendered >= totals.Total {
			st.Change = flow.tendered - totals.Total
			st.ConfirmEnabled = flow.hasTender
		} else {
			st.Shortfall = totals.Total - flow.tendered
		}
	} else {
		st.ConfirmEnabled = true
	}
	return st
}

// QuickAmounts returns the tender shortcuts for a total: the exact
// amount plus the round amounts that cover it.
func QuickAmounts(total int64) []int64 {
	amounts := []int64{total}
	for _, base := range quickCashBases {
		if base > total {
			amounts = append(amounts, base)
		}
	}
	return amounts
}
