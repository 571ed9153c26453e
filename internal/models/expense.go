package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentCash = budget.PaymentCash
	PaymentCard = "card"
)

// Expense is a single expense of a collection.
type Expense struct {
	DefaultModel
	Collection string          `gorm:"index"` // The tenant the expense belongs to
	Shop       string          // Where the money was spent
	Message    string          // Free text, may contain budget hashtags
	City       string          // City of the shop
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Payment    string          `gorm:"default:cash"`
	Budget     string          // Budget explicitly chosen for the expense
	Timestamp  time.Time       `gorm:"index"`
}

// AfterFind enforces timestamps to be in UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Timestamp = e.Timestamp.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - defaults the payment to cash
//   - defaults the timestamp to now and stores it in UTC
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Collection = strings.TrimSpace(e.Collection)
	if e.Collection == "" {
		return ErrCollectionEmpty
	}

	e.Shop = strings.TrimSpace(e.Shop)
	e.Message = strings.TrimSpace(e.Message)
	e.City = strings.TrimSpace(e.City)
	e.Budget = strings.TrimSpace(e.Budget)

	e.Payment = strings.ToLower(strings.TrimSpace(e.Payment))
	if e.Payment == "" {
		e.Payment = PaymentCash
	}

	if e.Payment != PaymentCash && e.Payment != PaymentCard {
		return ErrPaymentInvalid
	}

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().In(time.UTC)
	} else {
		e.Timestamp = e.Timestamp.In(time.UTC)
	}

	return nil
}

// Entry returns the expense as used for budget matching.
func (e Expense) Entry() budget.Expense {
	return budget.Expense{
		ID:        e.ID.String(),
		Shop:      e.Shop,
		Message:   e.Message,
		City:      e.City,
		Amount:    e.Amount,
		Timestamp: e.Timestamp,
		Budget:    e.Budget,
		Payment:   e.Payment,
	}
}

// Entries converts all expenses with Entry.
func Entries(expenses []Expense) []budget.Expense {
	entries := make([]budget.Expense, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, e.Entry())
	}

	return entries
}

// ExpensesBetween returns all expenses of the collection in the range,
// ordered by their timestamp. Both range boundaries are inclusive.
func ExpensesBetween(db *gorm.DB, collection string, r types.Range) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where("collection = ?", collection).
		Where("timestamp >= ? AND timestamp <= ?", r.Begin.In(time.UTC), r.End.In(time.UTC)).
		Order("timestamp ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// AmountBetween returns the sum of the amounts of all expenses of the
// collection in the range.
func AmountBetween(db *gorm.DB, collection string, r types.Range) (decimal.Decimal, error) {
	expenses, err := ExpensesBetween(db, collection, r)
	if err != nil {
		return decimal.Zero, err
	}

	return budget.SumBetween(Entries(expenses)), nil
}

// GetExpense returns the expense with the ID if it belongs to the collection.
func GetExpense(db *gorm.DB, collection string, id uuid.UUID) (Expense, error) {
	var e Expense

	err := db.
		Where("collection = ?", collection).
		First(&e, id).Error
	if err != nil {
		return Expense{}, err
	}

	return e, nil
}
