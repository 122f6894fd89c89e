package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/reports"
	"github.com/Govind-619/OrderDesk/testutil"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func orderIDs(orders []models.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids
}

func newRepo(t *testing.T) *OrderRepository {
	return NewOrderRepository(testutil.SetupTestDB(t))
}

func TestFindAllOrdersNewestFirst(t *testing.T) {
	orders, err := newRepo(t).FindAll(context.Background(), OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{18, 16, 15, 20, 19, 17, 14, 13, 12, 11, 10}, orderIDs(orders))
}

func TestListPagesAndCounts(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	page, total, err := repo.List(ctx, OrderFilter{}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Equal(t, []uint{18, 16, 15}, orderIDs(page))

	page, total, err = repo.List(ctx, OrderFilter{}, 9, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Equal(t, []uint{11, 10}, orderIDs(page))
}

func TestOrderFilters(t *testing.T) {
	repo := newRepo(t)

	tests := []struct {
		name   string
		filter OrderFilter
		want   []uint
	}{
		{"exact date", OrderFilter{Date: date("2025-10-05")}, []uint{18}},
		{"inclusive date range", OrderFilter{DateFrom: date("2025-10-02"), DateTo: date("2025-10-03")}, []uint{16, 15}},
		{"date from only", OrderFilter{DateFrom: date("2025-10-03")}, []uint{18, 16}},
		{"date to only", OrderFilter{DateTo: date("2025-10-01")}, []uint{20, 19, 17, 14, 13, 12, 11, 10}},
		{"status is case insensitive", OrderFilter{Status: "COMPLETED"}, []uint{18, 16, 15, 20, 19, 17, 14, 13, 12, 11, 10}},
		{"unknown status", OrderFilter{Status: "pending"}, []uint{}},
		{"id substring", OrderFilter{Search: "20"}, []uint{20}},
		{"id digit", OrderFilter{Search: "1"}, []uint{18, 16, 15, 19, 17, 14, 13, 12, 11, 10}},
		{"like wildcards are literal", OrderFilter{Search: "%"}, []uint{}},
		{"min amount", OrderFilter{MinAmount: amount("20")}, []uint{18, 20, 19, 14, 11}},
		{"max amount", OrderFilter{MaxAmount: amount("10")}, []uint{15, 10}},
		{"amount bounds are inclusive", OrderFilter{MinAmount: amount("9.25"), MaxAmount: amount("9.25")}, []uint{10}},
		{"amount range", OrderFilter{MinAmount: amount("15"), MaxAmount: amount("22")}, []uint{16, 13, 12, 11}},
		{"payment type", OrderFilter{PaymentType: "cash"}, []uint{18, 16, 20, 19, 14, 11}},
		{"payment status", OrderFilter{PaymentStatus: "refunded"}, []uint{15}},
		{"payment type and status", OrderFilter{PaymentType: "Card", PaymentStatus: "Refunded"}, []uint{15}},
		{"no payment matches both", OrderFilter{PaymentType: "Cash", PaymentStatus: "Refunded"}, []uint{}},
		{"combined dimensions", OrderFilter{PaymentType: "Cash", DateTo: date("2025-10-01"), MinAmount: amount("50")}, []uint{20, 19}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.FindAll(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(orders))

			count, err := repo.Count(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), count, "count matches rows, no join duplicates")
		})
	}
}

func TestMinMaxEquivalentToSeparateBounds(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	both, err := repo.FindAll(ctx, OrderFilter{MinAmount: amount("10"), MaxAmount: amount("30")})
	require.NoError(t, err)

	minOnly, err := repo.FindAll(ctx, OrderFilter{MinAmount: amount("10")})
	require.NoError(t, err)
	maxOnly, err := repo.FindAll(ctx, OrderFilter{MaxAmount: amount("30")})
	require.NoError(t, err)

	inMax := make(map[uint]bool)
	for _, o := range maxOnly {
		inMax[o.OrderID] = true
	}
	var intersection []uint
	for _, o := range minOnly {
		if inMax[o.OrderID] {
			intersection = append(intersection, o.OrderID)
		}
	}
	assert.Equal(t, intersection, orderIDs(both))
}

func TestAmountFilterUsesItemTotals(t *testing.T) {
	orders, err := newRepo(t).FindAll(context.Background(), OrderFilter{MinAmount: amount("20")})
	require.NoError(t, err)
	for _, o := range orders {
		assert.True(t, reports.OrderTotal(o.Items).GreaterThanOrEqual(decimal.NewFromInt(20)), "order %d", o.OrderID)
	}
}

func TestFindByIDLoadsRelations(t *testing.T) {
	order, err := newRepo(t).FindByID(context.Background(), 11)
	require.NoError(t, err)

	assert.Equal(t, "2025-10-01", order.Date().Format("2006-01-02"))
	require.Len(t, order.Items, 6)
	assert.Equal(t, "Item5", order.Items[0].Item.ItemName)
	assert.Equal(t, "Soft Drinks", order.Items[0].Item.Category.CategoryName)
	assert.Equal(t, "Food", order.Items[0].Item.Menu.MenuName)

	require.Len(t, order.Payments, 2)
	assert.Equal(t, uint(102), order.Payments[0].PaymentID, "payments newest first")
	assert.Equal(t, uint(101), order.Payments[1].PaymentID)

	agg := reports.Summarize(*order)
	assert.Equal(t, "21.25", reports.Amount(agg.TotalAmount).String())
	assert.Equal(t, "0.00", reports.Amount(agg.PaymentBalance).String())
}

func TestFindByIDNotFound(t *testing.T) {
	_, err := newRepo(t).FindByID(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.Equal(t, "Order with ID 99999 not found", utils.GetAppError(err).Message)
}

func TestStoredTotalsMatchLineTotals(t *testing.T) {
	orders, err := newRepo(t).FindAll(context.Background(), OrderFilter{})
	require.NoError(t, err)

	items := 0
	for _, o := range orders {
		for _, it := range o.Items {
			items++
			assert.True(t, it.Total.Equal(it.LineTotal()), "order %d item %d", o.OrderID, it.ID)
		}
	}
	assert.Equal(t, 52, items)
}

func TestOrderFilterIsEmpty(t *testing.T) {
	assert.True(t, OrderFilter{}.IsEmpty())
	assert.False(t, OrderFilter{Status: "Completed"}.IsEmpty())
	assert.False(t, OrderFilter{MaxAmount: amount("1")}.IsEmpty())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `10\%`, escapeLike("10%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `\\`, escapeLike(`\`))
}

func TestAmountBoundsMatchExactOrderTotals(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	orders, err := repo.FindAll(ctx, OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 11)

	for _, o := range orders {
		total := reports.OrderTotal(o.Items)

		matched, err := repo.FindAll(ctx, OrderFilter{MinAmount: &total, MaxAmount: &total})
		require.NoError(t, err)
		assert.Contains(t, orderIDs(matched), o.OrderID, "order %d between %s and %s", o.OrderID, total, total)

		matched, err = repo.FindAll(ctx, OrderFilter{MaxAmount: &total})
		require.NoError(t, err)
		assert.Contains(t, orderIDs(matched), o.OrderID, "order %d at max_amount %s", o.OrderID, total)

		matched, err = repo.FindAll(ctx, OrderFilter{MinAmount: &total})
		require.NoError(t, err)
		assert.Contains(t, orderIDs(matched), o.OrderID, "order %d at min_amount %s", o.OrderID, total)
	}
}
