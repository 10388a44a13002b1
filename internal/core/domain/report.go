package domain

import "time"

// ReportType identifies one of the report templates the console can generate.
type ReportType string

const (
	ReportMonthly  ReportType = "monthly"
	ReportCashflow ReportType = "cashflow"
	ReportServices ReportType = "services"
	ReportExpenses ReportType = "expenses"
	ReportAnnual   ReportType = "annual"
	ReportForecast ReportType = "forecast"
)

var reportNames = map[ReportType]string{
	ReportMonthly:  "Relatório Financeiro Mensal",
	ReportCashflow: "Análise de Fluxo de Caixa",
	ReportServices: "Relatório de Serviços Prestados",
	ReportExpenses: "Análise de Despesas por Categoria",
	ReportAnnual:   "Relatório Anual Consolidado",
	ReportForecast: "Previsão de Recebimentos",
}

var reportKinds = map[ReportType]string{
	ReportMonthly:  "Mensal",
	ReportCashflow: "Análise",
	ReportServices: "Serviços",
	ReportExpenses: "Categorias",
	ReportAnnual:   "Anual",
	ReportForecast: "Previsão",
}

// DisplayName returns the Portuguese report title for the type.
func (t ReportType) DisplayName() string {
	if name, ok := reportNames[t]; ok {
		return name
	}
	return "Relatório"
}

// Kind returns the short category label for the type.
func (t ReportType) Kind() string {
	if kind, ok := reportKinds[t]; ok {
		return kind
	}
	return "Geral"
}

// MonthNames holds full Portuguese month names, index 1..12.
var MonthNames = [13]string{"",
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ShortMonthNames holds abbreviated Portuguese month names, index 1..12.
var ShortMonthNames = [13]string{"",
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Report is a generated-report metadata record. Reports are never persisted;
// they live in an in-memory registry capped at the most recent entries.
type Report struct {
	Name        string    `json:"name"`
	Kind        string    `json:"type"`
	Period      string    `json:"period"` // e.g. "Abril 2024"
	Format      string    `json:"format"` // requested output format (pdf, xlsx)
	CompanyID   string    `json:"companyID"`
	EntryCount  int       `json:"entryCount"` // rows covered by the bounded read
	GeneratedAt time.Time `json:"generatedAt"`
}
