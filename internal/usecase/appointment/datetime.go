package appointment

import (
	"time"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/timezone"
)

// Formatos aceitos para data_hora: RFC 3339 completo ou o formato do
// datetime-local do navegador (sem fuso, interpretado no fuso configurado).
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDateTime(value, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	loc := timezone.Location(tz)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, httperr.Validation("Data ou hora inválida")
}

// parsePeriodBound aceita também uma data pura; quando é a ponta final do
// período, a data pura vale até o fim daquele dia.
func parsePeriodBound(value, tz string, endOfDay bool) (time.Time, error) {
	if t, err := parseDateTime(value, tz); err == nil {
		return t, nil
	}

	loc := timezone.Location(tz)
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, httperr.Validation("Data ou hora inválida")
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
