package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing constants applied during order creation. Monetary values use exact
// decimal arithmetic; rounding to two decimals happens only at presentation.
var (
	// TaxRate is the fixed tax fraction applied to the order subtotal.
	TaxRate = decimal.New(1, -1) // 0.1

	// DeliveryFee is the fixed delivery charge added to every order.
	DeliveryFee = decimal.New(5, 0) // 5.00
)

// OrderTotals holds the derived monetary fields of an order. All fields are
// computed, never client-supplied, and satisfy:
//
//	Total == Subtotal + Tax + DeliveryFee
type OrderTotals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// CalculateOrderTotals derives tax, delivery fee, and total from a subtotal.
func CalculateOrderTotals(subtotal decimal.Decimal) OrderTotals {
	tax := subtotal.Mul(TaxRate)
	return OrderTotals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: DeliveryFee,
		Total:       subtotal.Add(tax).Add(DeliveryFee),
	}
}

const orderNumberRandomDigits = 4

// NewOrderNumber generates a human-readable order number of the form
// ORD-<base36 timestamp>-<random>. The timestamp component keeps numbers
// roughly sortable by creation time; the random suffix disambiguates orders
// created in the same millisecond.
func NewOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	random := make([]byte, orderNumberRandomDigits)
	for i := range random {
		random[i] = alphabet[rand.IntN(len(alphabet))]
	}

	return fmt.Sprintf("ORD-%s-%s", ts, random)
}
