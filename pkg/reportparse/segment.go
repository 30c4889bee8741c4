package reportparse

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resultsContainer is the top-level wrapper the external page renders the
// report into. Its absence means "no report", not an error.
const resultsContainer = "#results"

// rawBlock is one top-level named block located by the segmenter.
type rawBlock struct {
	title  string
	id     string
	isRisk bool
	sel    *goquery.Selection
}

// segment splits the document into top-level named blocks. A direct child
// of the results container qualifies when it carries a heading; the heading
// text, run through the title normalizer, becomes the block title. The block
// identifier comes from an article/section landmark id when one exists,
// otherwise it is slugified from the normalized title.
func (p *Parser) segment(doc *goquery.Document) []rawBlock {
	container := doc.Find(resultsContainer).First()
	if container.Length() == 0 {
		p.log.Warnf("report html: results container %q not found, emitting no sections", resultsContainer)
		return nil
	}

	var blocks []rawBlock
	container.Children().Each(func(_ int, block *goquery.Selection) {
		heading := block.Find("h1, h2, h3").First()
		if heading.Length() == 0 {
			return
		}
		title := p.titles.Normalize(strings.TrimSpace(heading.Text()))

		id := ""
		if block.Is("article[id], section[id]") {
			id = block.AttrOr("id", "")
		} else if landmark := block.Find("article[id], section[id]").First(); landmark.Length() > 0 {
			id = landmark.AttrOr("id", "")
		}
		if id == "" {
			id = slugify(title)
		}

		blocks = append(blocks, rawBlock{
			title:  title,
			id:     id,
			isRisk: isRiskBlock(title, id),
			sel:    block,
		})
	})
	return blocks
}

// isRiskBlock classifies the risk-analysis block. Zero or one match is the
// expected case; when the page carries more than one, each is processed
// independently as a risk block.
func isRiskBlock(title, id string) bool {
	return strings.Contains(strings.ToLower(title), "risk analysis") ||
		strings.Contains(id, "risk-analysis")
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a stable identifier from a normalized title: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen, no
// leading or trailing hyphen.
func slugify(title string) string {
	return strings.Trim(nonAlnumRun.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
