package repository

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderAmountExpr is the per-order sum of item totals, rounded to the item
// column scale so floating point sums on sqlite still compare equal to exact
// bounds. Orders without items amount to 0.
const orderAmountExpr = "(SELECT ROUND(COALESCE(SUM(order_items.price * order_items.qty), 0), 5) " +
	"FROM order_items WHERE order_items.order_id = orders.order_id)"

const paymentExistsExpr = "EXISTS (SELECT 1 FROM payments WHERE payments.order_id = orders.order_id AND "

// OrderFilter holds the optional criteria applied to an order query.
// Zero values mean no filtering on that dimension; all set criteria must hold.
type OrderFilter struct {
	Date          *time.Time
	DateFrom      *time.Time
	DateTo        *time.Time
	Status        string
	Search        string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	PaymentType   string
	PaymentStatus string
}

// IsEmpty reports whether the filter has no criteria set
func (f OrderFilter) IsEmpty() bool {
	return f.Date == nil && f.DateFrom == nil && f.DateTo == nil &&
		f.Status == "" && f.Search == "" &&
		f.MinAmount == nil && f.MaxAmount == nil &&
		f.PaymentType == "" && f.PaymentStatus == ""
}

// Scope applies the filter to a query on the orders table
func (f OrderFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.Date != nil {
		db = db.Where("orders.order_date = ?", *f.Date)
	}
	if f.DateFrom != nil {
		db = db.Where("orders.order_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("orders.order_date <= ?", *f.DateTo)
	}

	if status := strings.TrimSpace(f.Status); status != "" {
		db = db.Where("LOWER(orders.order_status) = LOWER(?)", status)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		db = db.Where(`CAST(orders.order_id AS TEXT) LIKE ? ESCAPE '\'`, "%"+escapeLike(search)+"%")
	}

	switch {
	case f.MinAmount != nil && f.MaxAmount != nil:
		db = db.Where(orderAmountExpr+" BETWEEN CAST(? AS NUMERIC) AND CAST(? AS NUMERIC)",
			f.MinAmount.String(), f.MaxAmount.String())
	case f.MinAmount != nil:
		db = db.Where(orderAmountExpr+" >= CAST(? AS NUMERIC)", f.MinAmount.String())
	case f.MaxAmount != nil:
		db = db.Where(orderAmountExpr+" <= CAST(? AS NUMERIC)", f.MaxAmount.String())
	}

	// EXISTS keeps one row per order however many payments match
	if paymentType := strings.TrimSpace(f.PaymentType); paymentType != "" {
		db = db.Where(paymentExistsExpr+"LOWER(payments.payment_type) = LOWER(?))", paymentType)
	}
	if paymentStatus := strings.TrimSpace(f.PaymentStatus); paymentStatus != "" {
		db = db.Where(paymentExistsExpr+"LOWER(payments.payment_status) = LOWER(?))", paymentStatus)
	}

	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
