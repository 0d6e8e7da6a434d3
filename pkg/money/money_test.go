package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cartera-api/pkg/money"
)

func TestFormat_USD(t *testing.T) {
	f := money.NewFormatter("usd")

	assert.Equal(t, "USD", f.Code())
	assert.Equal(t, "$1,234.50", f.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$100.00", f.Format(decimal.NewFromInt(100)))
	assert.Equal(t, "$0.00", f.Format(decimal.Zero))
	assert.Equal(t, "-$15.50", f.Format(decimal.RequireFromString("-15.5")))
}

func TestFormat_CodigoDesconocidoCaeAUSD(t *testing.T) {
	f := money.NewFormatter("XYZ1")
	assert.Equal(t, "USD", f.Code())
}

func TestFormat_MonedaSinDecimales(t *testing.T) {
	f := money.NewFormatter("JPY")
	assert.Equal(t, "¥1,500", f.Format(decimal.RequireFromString("1499.6")))
}

func TestFormat_MontosGrandesSinPerderPrecision(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "$12,345,678,901,234,567.89", f.Format(decimal.RequireFromString("12345678901234567.89")))
	assert.Equal(t, "-$1,000,000.01", f.Format(decimal.RequireFromString("-1000000.01")))
	assert.Equal(t, "$999.99", f.Format(decimal.RequireFromString("999.99")))
}
