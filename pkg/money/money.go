// Package money formatea montos para mensajes y reportes.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var symbols = map[string]string{
	"USD": "$",
	"COP": "$",
	"MXN": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// Formatter formatea montos en una moneda fija.
type Formatter struct {
	code   string
	symbol string
	scale  int
}

// NewFormatter construye el formateador para el código ISO 4217 dado.
// Un código desconocido cae a USD.
func NewFormatter(code string) *Formatter {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)
	iso := unit.String()
	sym, ok := symbols[iso]
	if !ok {
		sym = iso + " "
	}
	return &Formatter{
		code:   iso,
		symbol: sym,
		scale:  scale,
	}
}

// Code código ISO efectivo.
func (f *Formatter) Code() string { return f.code }

// Format devuelve, por ejemplo, "$1,234.50" o "-$15.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + f.symbol + groupThousands(rounded.StringFixed(int32(f.scale)))
}

// groupThousands inserta ',' cada tres dígitos de la parte entera de un
// decimal sin signo ya formateado ("1234567.50" -> "1,234,567.50").
func groupThousands(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + frac
}
