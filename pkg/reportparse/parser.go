package reportparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/msc-hk/esg-reporter/pkg/taxonomy"
)

// Parser transforms one scraped results page into the ordered section model.
// It holds no state between calls: every Parse is independent, side-effect
// free, and safe to run concurrently against different inputs.
//
// The expected markup shape is a schema-on-read contract with the external
// scraper (shape version 1):
//
//	#results > <block containing h1-h3>      one ReportSection each
//	  article[id] / section[id]              explicit section id landmark
//	  .theme-grid                            one theme per grid
//	    [id^='theme-']                       theme machine identifier
//	    .theme-title | h3 | h4               theme display name
//	    .risk-content .module                risk cards
//	    .advice-content .module              recommendation cards
//	      p, li                              card text
//	      .sources a                         citation links (risks only)
//
// Drift from this shape degrades to omitted information with a logged
// warning; it never aborts the parse.
type Parser struct {
	table  *taxonomy.Table
	titles *taxonomy.Normalizer
	log    *logrus.Logger
}

// New builds a parser. Nil arguments fall back to the built-in taxonomy
// table, the default title normalizer, and the standard logger.
func New(table *taxonomy.Table, titles *taxonomy.Normalizer, log *logrus.Logger) *Parser {
	if table == nil {
		table = taxonomy.Default()
	}
	if titles == nil {
		titles = taxonomy.NewNormalizer()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{table: table, titles: titles, log: log}
}

// Parse turns a raw results-page HTML string into the ordered section
// model. Any input, however malformed, yields a best-effort (possibly
// empty) section slice; the caller detects a failed load by emptiness,
// not by an error.
func (p *Parser) Parse(rawHTML string) []ReportSection {
	sections := []ReportSection{}
	if strings.TrimSpace(rawHTML) == "" {
		return sections
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		p.log.Warnf("report html: unparseable document: %v", err)
		return sections
	}

	for _, block := range p.segment(doc) {
		sections = append(sections, p.assemble(block))
	}
	return sections
}

// assemble folds one raw block into its final section: risk blocks get the
// structured categories, everything else passes through as verbatim HTML.
// Document order is preserved and duplicate ids are deliberately left to
// the consumer to disambiguate.
func (p *Parser) assemble(block rawBlock) ReportSection {
	section := ReportSection{ID: block.id, Title: block.title}

	if block.isRisk {
		section.Type = SectionRisk
		section.Categories = p.extractRisk(block)
		return section
	}

	section.Type = SectionText
	html, err := goquery.OuterHtml(block.sel)
	if err != nil {
		p.log.Warnf("report html: could not serialize section %q: %v", block.id, err)
	}
	section.HTML = html
	return section
}
