// Package render turns the parsed section model into the delivery
// surfaces: screen HTML, print-optimized HTML, JSON, and plain text.
// Renderers are pure consumers of the model; they never re-run extraction.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/msc-hk/esg-reporter/pkg/reportparse"
)

// Format represents the output format of the report.
type Format string

const (
	HTMLFormat  Format = "html"
	PrintFormat Format = "print"
	JSONFormat  Format = "json"
	TextFormat  Format = "text"
)

// FileExtension returns the file extension used when writing the format
// to disk.
func (f Format) FileExtension() string {
	switch f {
	case JSONFormat:
		return "json"
	case TextFormat:
		return "txt"
	default:
		return "html"
	}
}

// Options defines options for report generation.
type Options struct {
	Format Format
	// Title is the report heading, e.g. "ESG risk report: Textiles in Vietnam".
	Title string
	// Unlocked is supplied by the payment gate collaborator. A locked
	// report renders only the paywall placeholder.
	Unlocked bool
}

// Generator renders the section model in the supported formats.
type Generator struct{}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the sections according to the options.
func (g *Generator) Generate(sections []reportparse.ReportSection, opts *Options) (string, error) {
	if !opts.Unlocked {
		return g.generateLocked(opts)
	}

	switch opts.Format {
	case JSONFormat:
		return g.generateJSON(sections)
	case TextFormat:
		return g.generateText(sections, opts), nil
	case PrintFormat:
		return g.generateHTML(sections, opts, printTemplate)
	default:
		return g.generateHTML(sections, opts, screenTemplate)
	}
}

// generateLocked renders the paywall placeholder for every format.
func (g *Generator) generateLocked(opts *Options) (string, error) {
	switch opts.Format {
	case JSONFormat:
		data, err := json.MarshalIndent(map[string]any{"locked": true}, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case TextFormat:
		return "This report is locked. Complete your purchase to view the full report.\n", nil
	default:
		var sb strings.Builder
		if err := lockedPage.Execute(&sb, opts); err != nil {
			return "", fmt.Errorf("render paywall: %w", err)
		}
		return sb.String(), nil
	}
}

func (g *Generator) generateJSON(sections []reportparse.ReportSection) (string, error) {
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// generateText renders the summary text surface: section titles plus the
// structured risk content. Text sections carry opaque markup and are
// listed by title only.
func (g *Generator) generateText(sections []reportparse.ReportSection, opts *Options) string {
	var sb strings.Builder

	sb.WriteString(opts.Title + "\n")
	sb.WriteString(strings.Repeat("=", len(opts.Title)) + "\n\n")

	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("%s [%s]\n", section.Title, section.ID))
		if section.Type != reportparse.SectionRisk {
			continue
		}
		for _, category := range section.Categories {
			sb.WriteString(fmt.Sprintf("  %s\n", category.CategoryTitle))
			for _, theme := range category.Themes {
				sb.WriteString(fmt.Sprintf("    %s (%d risks, %d recommendations)\n",
					theme.ThemeName, theme.RiskCount, theme.RecommendationCount))
				for _, risk := range theme.Risks {
					sb.WriteString(fmt.Sprintf("      - %s\n", strings.ReplaceAll(risk.RiskDescription, "\n", "\n        ")))
					for _, source := range risk.Sources {
						sb.WriteString(fmt.Sprintf("        source: %s\n", source))
					}
				}
				for _, rec := range theme.Recommendations {
					sb.WriteString(fmt.Sprintf("      > %s\n", strings.ReplaceAll(rec.RecommendationText, "\n", "\n        ")))
				}
			}
		}
	}

	return sb.String()
}

// reportView is the template payload for the HTML surfaces.
type reportView struct {
	Title    string
	Sections []reportparse.ReportSection
}

func (g *Generator) generateHTML(sections []reportparse.ReportSection, opts *Options, tmpl *template.Template) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, reportView{Title: opts.Title, Sections: sections})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}
