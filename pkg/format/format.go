// Package format implementa el formato de montos que usan las vistas:
// siempre dos decimales y separador de miles según el idioma configurado.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

type separators struct {
	group   string
	decimal string
}

// Tabla CLDR reducida a los idiomas que las vistas usan hoy.
// Cualquier otra etiqueta cae al formato en-US.
var sepByLang = map[string]separators{
	"ru": {group: " ", decimal: ","},
	"es": {group: ".", decimal: ","},
	"en": {group: ",", decimal: "."},
}

// Formatter produce montos con dos decimales fijos y miles agrupados.
type Formatter struct {
	sep separators
}

// New construye un Formatter a partir de una etiqueta BCP 47 ("ru", "es-CO", ...).
// Una etiqueta no reconocida no es error: se usa el formato por defecto.
func New(locale string) *Formatter {
	sep := sepByLang["en"]
	if tag, err := language.Parse(locale); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			if s, ok := sepByLang[base.String()]; ok {
				sep = s
			}
		}
	}
	return &Formatter{sep: sep}
}

// Amount formatea el monto con exactamente dos decimales (redondeo half-up)
// y separador de miles. Ej. bajo "ru": 1234.5 -> "1 234,50".
func (f *Formatter) Amount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(intPart, f.sep.group) + f.sep.decimal + fracPart
}

// AmountPtr formatea un monto opcional; la ausencia se muestra como cero.
func (f *Formatter) AmountPtr(d *decimal.Decimal) string {
	if d == nil {
		return f.Amount(decimal.Zero)
	}
	return f.Amount(*d)
}

// Quantity formatea una cantidad sin decimales forzados ("2", "1.5").
func (f *Formatter) Quantity(d decimal.Decimal) string {
	return strings.ReplaceAll(d.String(), ".", f.sep.decimal)
}

// groupThousands inserta el separador de miles en un string numérico sin signo.
// Ej: "25000" -> "25 000", "1000000" -> "1 000 000"
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + (n/3)*len(sep))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
