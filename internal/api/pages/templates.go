package pages

import (
	"embed"
	"html/template"

	"paywall-app/internal/domain/prices"
	"paywall-app/internal/pkg/display"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"amount": func(p prices.Price) string {
			return display.FormatAmount(p.UnitAmount, p.Currency)
		},
		"interval": func(r *prices.Recurrence) string {
			return display.FormatInterval(r.Interval, r.IntervalCount)
		},
		"dailyRate": func(p prices.Price) string {
			return display.FormatAmount(prices.DailyRate(p), p.Currency)
		},
		"popular": func(i int) bool { return i == 1 },
	}
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
