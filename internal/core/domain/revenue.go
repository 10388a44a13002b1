package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates the payment state of a revenue entry.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusLate    PaymentStatus = "late"
)

// Valid reports whether the status is one of the known values.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusLate:
		return true
	}
	return false
}

// RevenueEntry is a service billed to a client family, owned by exactly one company.
type RevenueEntry struct {
	RevenueID   string          `json:"revenueID"`
	CompanyID   string          `json:"companyID"`
	ServiceName string          `json:"serviceName"`
	ClientName  string          `json:"clientName"`
	Amount      decimal.Decimal `json:"amount"` // non-negative, stored as a plain number
	ServiceDate time.Time       `json:"serviceDate"`
	Status      PaymentStatus   `json:"status"`
	AuditFields
}

// EntryFilter is the transient, per-request filter state for entry queries.
// It narrows a company-scoped query; it never widens one.
type EntryFilter struct {
	Status    *PaymentStatus // equality match when set
	Paid      *bool          // expense counterpart of Status
	Category  *ExpenseCategory
	StartDate *time.Time // inclusive; applied only when both bounds are set
	EndDate   *time.Time
	Search    string // free-text, case-insensitive
}

// HasDateRange reports whether both bounds of the date range are present.
func (f EntryFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
