// Package moneyfmt formatea montos y fechas para presentación según el
// locale de la empresa. Es una capa de display: la aritmética de dinero se
// hace siempre en decimal; aquí solo se convierte a texto.
package moneyfmt

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount formatea un monto con símbolo de moneda y separadores del locale,
// ej. Amount(1234.5, "USD", "en-US") → "$ 1,234.50".
// Si el código de moneda o el locale no se reconocen, cae a "<code> <monto>".
func Amount(amount decimal.Decimal, currencyCode, locale string) string {
	rounded := amount.Round(2)
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return currencyCode + " " + rounded.StringFixed(2)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	// El símbolo sale de x/text; los dígitos se imprimen desde el decimal
	// exacto para no pasar por float.
	return p.Sprintf("%v %s", currency.Symbol(unit), rounded.StringFixed(2))
}

// ShortDate formatea una fecha corta según el locale: mes/día/año para
// en-US, día/mes/año para el resto.
func ShortDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	tag, err := language.Parse(locale)
	if err == nil {
		if base, _ := tag.Base(); base.String() == "en" {
			if region, _ := tag.Region(); region.String() == "US" {
				return t.Format("01/02/2006")
			}
		}
	}
	return t.Format("02/01/2006")
}
