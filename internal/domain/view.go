package domain

import (
	"fmt"

	"github.com/Tumi03-data/dash-dashboard/pkg/utils"
)

// ChartType identifica a variante de gráfico de um ChartSpec
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
)

// KPIValueKind distingue valores numéricos de valores textuais em um KPI
type KPIValueKind string

const (
	KPIValueNumeric KPIValueKind = "numeric"
	KPIValueText    KPIValueKind = "text"
)

// KPIValue é uma variante etiquetada: valores numéricos carregam a flag de
// percentual para que o renderizador decida a formatação, valores textuais
// passam adiante sem alteração.
type KPIValue struct {
	Kind         KPIValueKind `json:"kind"`
	Number       float64      `json:"number,omitempty"`
	IsPercentage bool         `json:"is_percentage,omitempty"`
	Text         string       `json:"text,omitempty"`
}

// NumericKPIValue cria um valor numérico simples
func NumericKPIValue(v float64) KPIValue {
	return KPIValue{Kind: KPIValueNumeric, Number: v}
}

// PercentageKPIValue cria um valor numérico marcado como percentual
func PercentageKPIValue(v float64) KPIValue {
	return KPIValue{Kind: KPIValueNumeric, Number: v, IsPercentage: true}
}

// TextKPIValue cria um valor textual
func TextKPIValue(s string) KPIValue {
	return KPIValue{Kind: KPIValueText, Text: s}
}

// Format materializa o valor para exibição: números recebem separador de
// milhar, percentuais o sufixo "%", textos passam inalterados.
func (v KPIValue) Format() string {
	if v.Kind == KPIValueText {
		return v.Text
	}

	if v.IsPercentage {
		return fmt.Sprintf("%.2f%%", v.Number)
	}

	return utils.FormatThousands(v.Number)
}

// KPI é uma métrica escalar exibida no topo de uma visão
type KPI struct {
	Label string   `json:"label"`
	Value KPIValue `json:"value"`
	Icon  string   `json:"icon"`
}

// Series é uma série numérica nomeada de um gráfico
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ReferenceLine é uma linha de referência constante sobreposta ao gráfico
// (ex.: meta de receita), replicada uma vez por categoria.
type ReferenceLine struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Dashed bool    `json:"dashed,omitempty"`
}

// ChartSpec descreve um gráfico de forma agnóstica ao renderizador
type ChartSpec struct {
	Title          string          `json:"title"`
	Type           ChartType       `json:"type"`
	Categories     []string        `json:"categories"`
	Series         []Series        `json:"series"`
	ReferenceLines []ReferenceLine `json:"reference_lines,omitempty"`
	ColorByValue   bool            `json:"color_by_value,omitempty"`
}

// ViewResult é a saída completa da visão de um papel: KPIs e gráficos,
// construída a cada ciclo de autenticação e nunca cacheada.
type ViewResult struct {
	Title   string      `json:"title"`
	Message string      `json:"message,omitempty"`
	KPIs    []KPI       `json:"kpis,omitempty"`
	Charts  []ChartSpec `json:"charts,omitempty"`
}
