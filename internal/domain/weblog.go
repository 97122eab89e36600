package domain

// Tipos de evento registrados nos logs web
const (
	EventJobRequest         = "JobRequest"
	EventDemoRequest        = "DemoRequest"
	EventAIAssistantRequest = "AIAssistantRequest"
	EventSalesInquiry       = "SalesInquiry"
)

// EventTypes lista os tipos de evento na ordem de exibição
var EventTypes = []string{
	EventJobRequest,
	EventDemoRequest,
	EventAIAssistantRequest,
	EventSalesInquiry,
}

// Nomes das colunas do dataset de logs web
const (
	WebLogColCountry   = "country"
	WebLogColEventType = "event_type"
	WebLogColWebTool   = "web_tool"
	WebLogColAmount    = "amount"
)

// WebLogRequiredColumns são as colunas obrigatórias do dataset de logs web
var WebLogRequiredColumns = []string{
	WebLogColCountry,
	WebLogColEventType,
	WebLogColWebTool,
	WebLogColAmount,
}

// WebLogRecord é um evento registrado pelo site. Amount igual a zero indica
// um evento não monetizado: entra nas contagens mas não nas somas de receita.
type WebLogRecord struct {
	Country   string  `json:"country"`
	EventType string  `json:"event_type"`
	WebTool   string  `json:"web_tool"`
	Amount    float64 `json:"amount"`
}

// WebLogDataset é um conjunto imutável de logs web com o manifesto de
// colunas de origem
type WebLogDataset struct {
	Columns []string       `json:"columns"`
	Records []WebLogRecord `json:"records"`
}

// MissingColumns retorna as colunas obrigatórias ausentes do manifesto
func (d *WebLogDataset) MissingColumns() []string {
	return missingColumns(d.Columns, WebLogRequiredColumns)
}

// Valid informa se o dataset possui todas as colunas obrigatórias
func (d *WebLogDataset) Valid() bool {
	return len(d.MissingColumns()) == 0
}
