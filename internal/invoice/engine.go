package invoice

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/shopspring/decimal"
)

// ItemField names an editable line-item field.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "unit_price"
)

// LineItem is one invoice row. Amount is never stored; it is derived from
// quantity and unit price on every read.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Amount returns quantity times unit price.
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals are the derived invoice sums, rounded to 2 decimal places.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Engine holds the invoice draft: its line items and tax rate. An engine
// always carries at least one line item.
type Engine struct {
	items   []LineItem
	taxRate decimal.Decimal
}

// NewEngine starts a draft with a single zero-valued line item.
func NewEngine() *Engine {
	e := &Engine{}
	e.items = append(e.items, newLineItem())
	return e
}

func newLineItem() LineItem {
	return LineItem{ID: uuid.New(), UnitPrice: decimal.Zero}
}

// Items returns a copy of the current line items in entry order.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// AddItem appends a fresh zero-valued line item and returns it.
func (e *Engine) AddItem() LineItem {
	item := newLineItem()
	e.items = append(e.items, item)
	return item
}

// RemoveItem deletes a line item. Removing the only remaining item is
// rejected; the list never drops below one row.
func (e *Engine) RemoveItem(id uuid.UUID) error {
	if len(e.items) == 1 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "an invoice needs at least one line item")
	}
	for i, item := range e.items {
		if item.ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
}

// UpdateItem applies raw form input to one field of a line item. Numeric
// input that does not parse is coerced to zero so the form stays renderable.
func (e *Engine) UpdateItem(id uuid.UUID, field ItemField, raw string) error {
	for i := range e.items {
		if e.items[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			e.items[i].Description = raw
		case FieldQuantity:
			e.items[i].Quantity = coerceQuantity(raw)
		case FieldUnitPrice:
			e.items[i].UnitPrice = coerceMoney(raw)
		default:
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown line item field")
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
}

// SetTaxRate updates the percentage applied on top of the subtotal.
func (e *Engine) SetTaxRate(raw string) {
	e.taxRate = coerceMoney(raw)
}

// TaxRate returns the active tax percentage.
func (e *Engine) TaxRate() decimal.Decimal {
	return e.taxRate
}

// Totals recomputes the derived sums from the current line items. Nothing is
// cached; every read reflects the latest edits.
func (e *Engine) Totals() Totals {
	subtotal := decimal.Zero
	for _, item := range e.items {
		subtotal = subtotal.Add(item.Amount())
	}
	subtotal = subtotal.Round(2)
	taxAmount := subtotal.Mul(e.taxRate).Div(decimal.NewFromInt(100)).Round(2)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount).Round(2),
	}
}

func coerceQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}

func coerceMoney(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
