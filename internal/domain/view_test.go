package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKPIValue_Format(t *testing.T) {
	tests := []struct {
		name     string
		value    KPIValue
		expected string
	}{
		{
			name:     "numérico com separador de milhar",
			value:    NumericKPIValue(642340),
			expected: "642,340",
		},
		{
			name:     "numérico com centavos",
			value:    NumericKPIValue(1250.5),
			expected: "1,250.50",
		},
		{
			name:     "percentual com duas casas",
			value:    PercentageKPIValue(23.4),
			expected: "23.40%",
		},
		{
			name:     "texto inalterado",
			value:    TextKPIValue("N/A"),
			expected: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Format())
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, role.Valid(), string(role))
	}

	assert.False(t, Role("auditor").Valid())
	assert.False(t, Role("").Valid())
}
