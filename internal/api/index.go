package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"converterservice/internal/service"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	Currencies []string
	Fallback   bool
}

// HandleIndex renders the converter page with the supported currencies.
func HandleIndex(svc service.ConverterInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := svc.SupportedCurrencies(r.Context())

		var buf bytes.Buffer
		if err := indexTemplate.Execute(&buf, indexPage{Currencies: list.Codes, Fallback: list.Fallback}); err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
