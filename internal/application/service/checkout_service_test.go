package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/enum"
	infra "github.com/sangkips/kasirpos/internal/infrastructure/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

func testMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: "1", Name: "Nasi Goreng", Price: 25000, Category: "Makanan Utama", Available: true},
		{ID: "2", Name: "Ayam Bakar", Price: 30000, Category: "Makanan Utama", Available: true},
		{ID: "3", Name: "Es Teh", Price: 5000, Category: "Minuman", Available: true},
	}
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *CartService, *SalesService) {
	t.Helper()
	menuRepo := infra.NewMemoryMenuRepository(testMenu())
	ledger := infra.NewMemoryLedgerRepository()
	carts := NewCartService(menuRepo)
	checkout := NewCheckoutService(carts, ledger, 0)
	sales := newTestSalesService(ledger)
	return checkout, carts, sales
}

func TestCheckoutService_Start_EmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	_, err := checkout.Start(context.Background(), "op-1")
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestCheckoutService_Start_ReportsTotals(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "op-1", "2")
	require.NoError(t, err)

	status, err := checkout.Start(ctx, "op-1")
	require.NoError(t, err)

	assert.Equal(t, enum.CheckoutIdle, status.State)
	assert.Equal(t, int64(55000), status.Totals.Subtotal)
	assert.Equal(t, int64(5500), status.Totals.Tax)
	assert.Equal(t, int64(60500), status.Totals.Total)
}

func TestCheckoutService_QuickAmounts(t *testing.T) {
	assert.Equal(t, []int64{60500, 100000, 150000, 200000, 500000}, QuickAmounts(60500))
	assert.Equal(t, []int64{450000, 500000}, QuickAmounts(450000))
	assert.Equal(t, []int64{50000, 100000, 150000, 200000, 500000}, QuickAmounts(50000))
	assert.Equal(t, []int64{600000}, QuickAmounts(600000))
}

func TestCheckoutService_Confirm_CashShortfall(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "op-1", "2")
	require.NoError(t, err)

	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentCash)
	require.NoError(t, err)

	status, err := checkout.SetTendered(ctx, "op-1", 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(10500), status.Shortfall)
	assert.False(t, status.ConfirmEnabled)

	_, err = checkout.Confirm(ctx, "op-1")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "shortfall", appErr.Errors[0].Field)
	assert.Equal(t, "10500", appErr.Errors[0].Message)
}

func TestCheckoutService_Confirm_CashWithChange(t *testing.T) {
	checkout, carts, sales := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "op-1", "2")
	require.NoError(t, err)

	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentCash)
	require.NoError(t, err)

	status, err := checkout.SetTendered(ctx, "op-1", 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(39500), status.Change)
	assert.True(t, status.ConfirmEnabled)

	tx, err := checkout.Confirm(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, int64(60500), tx.Total)
	assert.Equal(t, int64(100000), tx.Tendered)
	assert.Equal(t, int64(39500), tx.Change)

	// The sale is on the ledger and the cart is cleared.
	txs, err := sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)

	cart, err := carts.Get(ctx, "op-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// The flow is closed.
	_, err = checkout.Status(ctx, "op-1")
	assert.ErrorIs(t, err, apperror.ErrNoActiveCheckout)
}

func TestCheckoutService_Confirm_NonCashNeedsNoTender(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "3")
	require.NoError(t, err)

	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	status, err := checkout.SelectMethod(ctx, "op-1", enum.PaymentQRIS)
	require.NoError(t, err)
	assert.True(t, status.ConfirmEnabled)

	tx, err := checkout.Confirm(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentQRIS, tx.PaymentMethod)
	assert.Equal(t, int64(0), tx.Tendered)
}

func TestCheckoutService_SetTendered_Negative(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "3")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)

	_, err = checkout.SetTendered(ctx, "op-1", -500)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckoutService_Cancel_KeepsCart(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentCash)
	require.NoError(t, err)

	require.NoError(t, checkout.Cancel(ctx, "op-1"))

	_, err = checkout.Status(ctx, "op-1")
	assert.ErrorIs(t, err, apperror.ErrNoActiveCheckout)

	cart, err := carts.Get(ctx, "op-1")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())

	// A fresh flow over the same cart starts clean.
	status, err := checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, enum.CheckoutIdle, status.State)
	assert.Equal(t, int64(0), status.Tendered)
}

func TestCheckoutService_Cancel_NoFlow(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	err := checkout.Cancel(context.Background(), "op-1")
	assert.ErrorIs(t, err, apperror.ErrNoActiveCheckout)
}

func TestCheckoutService_Confirm_ContextCancelledAtEntry(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "3")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentQRIS)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = checkout.Confirm(cancelled, "op-1")
	assert.ErrorIs(t, err, context.Canceled)

	// The flow survives for a retry with a live context.
	_, err = checkout.Status(ctx, "op-1")
	require.NoError(t, err)
}

func TestCheckoutService_OperatorsIsolated(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "op-2", "3")
	require.NoError(t, err)

	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)

	// op-2 has no flow of their own.
	_, err = checkout.Status(ctx, "op-2")
	assert.ErrorIs(t, err, apperror.ErrNoActiveCheckout)

	status, err := checkout.Status(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, int64(25000), status.Totals.Subtotal)
}

func TestCheckoutService_Confirm_KeepsLinesAddedDuringSettlement(t *testing.T) {
	menuRepo := infra.NewMemoryMenuRepository(testMenu())
	ledger := infra.NewMemoryLedgerRepository()
	carts := NewCartService(menuRepo)
	checkout := NewCheckoutService(carts, ledger, 60*time.Millisecond)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentQRIS)
	require.NoError(t, err)

	type confirmResult struct {
		tx  *entity.Transaction
		err error
	}
	done := make(chan confirmResult, 1)
	go func() {
		tx, err := checkout.Confirm(ctx, "op-1")
		done <- confirmResult{tx, err}
	}()

	// Add a line for the next sale while the payment is settling.
	time.Sleep(20 * time.Millisecond)
	_, err = carts.AddItem(ctx, "op-1", "3")
	require.NoError(t, err)

	res := <-done
	require.NoError(t, res.err)
	tx := res.tx

	// Only the snapshotted line was charged.
	require.Len(t, tx.Items, 1)
	assert.Equal(t, "Nasi Goreng", tx.Items[0].Name)

	// The late line survives in the cart.
	cart, err := carts.Get(ctx, "op-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "3", cart.Lines[0].ItemID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCheckoutService_ProcessingDelayApplied(t *testing.T) {
	menuRepo := infra.NewMemoryMenuRepository(testMenu())
	ledger := infra.NewMemoryLedgerRepository()
	carts := NewCartService(menuRepo)
	checkout := NewCheckoutService(carts, ledger, 50*time.Millisecond)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "op-1", "3")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)
	_, err = checkout.SelectMethod(ctx, "op-1", enum.PaymentDebit)
	require.NoError(t, err)

	start := time.Now()
	_, err = checkout.Confirm(ctx, "op-1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
