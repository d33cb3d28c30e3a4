// Package templates renders the dashboard's HTML pages.
//
// Each page is parsed together with the shared layout so the sidebar and
// chrome wrap the page content. Pages are embedded at build time; there is
// no on-disk template lookup in production.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed pages/*.html
var pagesFS embed.FS

var printer = message.NewPrinter(language.English)

var funcs = template.FuncMap{
	"comma": func(n int) string { return printer.Sprintf("%d", n) },
	"km1":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"km2":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

var (
	// Overview renders the landing page with KPIs and the raw-data table.
	Overview = parse("overview.html")

	// Trends renders the yearly, seasonal and monthly chart page.
	Trends = parse("trends.html")

	// Insights renders rankings, causes, the heatmap and recommendations.
	Insights = parse("insights.html")
)

func parse(page string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(funcs).
		ParseFS(pagesFS, "pages/layout.html", "pages/"+page))
}

// Render writes the page to w with the given view data.
func Render(w io.Writer, t *template.Template, data any) error {
	return t.ExecuteTemplate(w, "layout.html", data)
}
