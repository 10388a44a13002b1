package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the fixed set of funeral-home cost categories.
type ExpenseCategory string

const (
	CategoryInstalacoes    ExpenseCategory = "Instalações"
	CategoryPessoal        ExpenseCategory = "Pessoal"
	CategoryFornecedores   ExpenseCategory = "Fornecedores"
	CategoryTransportes    ExpenseCategory = "Transportes"
	CategoryAdministrativo ExpenseCategory = "Administrativo"
	CategoryUtilidades     ExpenseCategory = "Utilidades"
	CategoryFinanceiro     ExpenseCategory = "Financeiro"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryInstalacoes,
	CategoryPessoal,
	CategoryFornecedores,
	CategoryTransportes,
	CategoryAdministrativo,
	CategoryUtilidades,
	CategoryFinanceiro,
}

// Valid reports whether the category is one of the known values.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ExpenseEntry is a cost owed by a company, due at a date, optionally already paid.
type ExpenseEntry struct {
	ExpenseID   string          `json:"expenseID"`
	CompanyID   string          `json:"companyID"`
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	IsPaid      bool            `json:"isPaid"`
	AuditFields
}
