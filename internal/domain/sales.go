package domain

// Canais de pagamento
const (
	ChannelOnline = "Online"
	ChannelCash   = "Cash"
)

// Channels lista os canais de pagamento na ordem de exibição
var Channels = []string{ChannelOnline, ChannelCash}

// Months são os rótulos de mês em ordem de calendário. Toda série mensal
// produzida pelos agregadores segue esta ordem.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ProductLines lista as seis linhas de produto na ordem de exibição
var ProductLines = []string{
	"Virtual Assistant",
	"Prototype Builder",
	"Employee Experience Platform",
	"Demo Scheduler",
	"AI Assist Insights",
	"Analytics Dashboard",
}

// Nomes das colunas do dataset de vendas
const (
	SalesColMonth            = "month"
	SalesColCurrentYearRev   = "current_year_revenue"
	SalesColPriorYearRev     = "prior_year_revenue"
	SalesColProfit           = "profit"
	SalesColQuantity         = "quantity"
	SalesColChannel          = "channel"
	SalesColProductLine      = "product_line"
	SalesColSalesperson      = "salesperson"
)

// SalesRequiredColumns são as colunas obrigatórias do dataset de vendas
var SalesRequiredColumns = []string{
	SalesColMonth,
	SalesColCurrentYearRev,
	SalesColPriorYearRev,
	SalesColProfit,
	SalesColQuantity,
	SalesColChannel,
	SalesColProductLine,
	SalesColSalesperson,
}

// SalesRecord é um registro mensal de vendas. Campos derivados (percentual
// de lucro, meta de receita) são calculados no momento da visão e nunca
// persistidos junto ao registro.
type SalesRecord struct {
	Month              string  `json:"month"`
	CurrentYearRevenue float64 `json:"current_year_revenue"`
	PriorYearRevenue   float64 `json:"prior_year_revenue"`
	Profit             float64 `json:"profit"`
	Quantity           int     `json:"quantity"`
	Channel            string  `json:"channel"`
	ProductLine        string  `json:"product_line"`
	Salesperson        string  `json:"salesperson"`
}

// SalesDataset é um conjunto imutável de registros de vendas acompanhado do
// manifesto de colunas de origem, usado na validação de colunas obrigatórias.
type SalesDataset struct {
	Columns []string      `json:"columns"`
	Records []SalesRecord `json:"records"`
}

// MissingColumns retorna as colunas obrigatórias ausentes do manifesto
func (d *SalesDataset) MissingColumns() []string {
	return missingColumns(d.Columns, SalesRequiredColumns)
}

// Valid informa se o dataset possui todas as colunas obrigatórias
func (d *SalesDataset) Valid() bool {
	return len(d.MissingColumns()) == 0
}

func missingColumns(present, required []string) []string {
	have := make(map[string]struct{}, len(present))
	for _, c := range present {
		have[c] = struct{}{}
	}

	var missing []string
	for _, c := range required {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
