package render

import "html/template"

// safe marks parser-preserved fragments as trusted markup. Text sections
// and module RawHTML come from the parsing core, which owns their shape.
var templateFuncs = template.FuncMap{
	"safe": func(s string) template.HTML { return template.HTML(s) },
}

const reportBody = `
<body>
    <h1>{{.Title}}</h1>
    {{range .Sections}}
    <section id="{{.ID}}">
        {{if eq .Type "risk"}}
        <h2>{{.Title}}</h2>
        {{range .Categories}}
        <div class="category">
            <h3>{{.CategoryTitle}}</h3>
            {{range .Themes}}
            <div class="theme">
                <h4>{{.ThemeName}}</h4>
                <p class="counts">{{.RiskCount}} risks, {{.RecommendationCount}} recommendations</p>
                {{range .Risks}}
                <div class="risk">{{if .RawHTML}}{{safe .RawHTML}}{{else}}<p>{{.RiskDescription}}</p>{{end}}</div>
                {{else}}
                <p class="empty">No risks identified for this theme.</p>
                {{end}}
                {{range .Recommendations}}
                <div class="recommendation">{{if .RawHTML}}{{safe .RawHTML}}{{else}}<p>{{.RecommendationText}}</p>{{end}}</div>
                {{else}}
                <p class="empty">No recommendations for this theme.</p>
                {{end}}
            </div>
            {{end}}
        </div>
        {{end}}
        {{else}}
        {{safe .HTML}}
        {{end}}
    </section>
    {{end}}
</body>
</html>`

// screenTemplate is the on-screen report surface.
var screenTemplate = template.Must(template.New("screen").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; color: #1f2937; }
        h1 { color: #333; }
        h2 { color: #666; }
        section { margin: 24px 0; }
        .category { margin: 16px 0; }
        .theme { border: 1px solid #ddd; margin: 10px 0; padding: 10px; border-radius: 5px; }
        .counts { color: #888; font-size: 0.9em; }
        .empty { color: #888; font-style: italic; }
    </style>
</head>` + reportBody))

// printTemplate is the print/PDF-bound surface: same content, page-break
// rules instead of screen chrome.
var printTemplate = template.Must(template.New("print").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        @page { margin: 2cm; }
        body { font-family: Georgia, serif; color: #000; }
        section { page-break-inside: avoid; margin: 18px 0; }
        .theme { page-break-inside: avoid; margin: 10px 0; padding: 6px 0; border-bottom: 1px solid #999; }
        .counts { font-size: 0.85em; }
        .empty { font-style: italic; }
        a { color: #000; text-decoration: none; }
    </style>
</head>` + reportBody))

// lockedPage is the paywall placeholder for the HTML surfaces.
var lockedPage = template.Must(template.New("locked").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .paywall { border: 1px solid #ddd; padding: 24px; border-radius: 5px; max-width: 480px; }
    </style>
</head>
<body>
    <div class="paywall">
        <h1>{{.Title}}</h1>
        <p>This report is locked. Complete your purchase to view the full report.</p>
    </div>
</body>
</html>`))
