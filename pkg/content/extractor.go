package content

import (
	"fmt"
	"strings"

	"news-crawler/pkg/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Selectors of the article page fields
const (
	TitleSelector    = "h1"
	BodySelector     = "body p"
	CategorySelector = "a.topic-header__rubric"
	DateSelector     = ".topic-header__time"
)

// DateFormat controls how the publish date element is turned into text
type DateFormat string

const (
	// DateContents stores a list-style dump of the date element's child
	// nodes, e.g. ['14:05, 16 октября 2026']
	DateContents DateFormat = "contents"
	// DateText stores the plain text of the date element
	DateText DateFormat = "text"
)

// Extractor turns an article page into an Article
type Extractor interface {
	Extract(htmlContent string) (*domain.Article, error)
}

// SelectorExtractor reads every field with a fixed CSS selector.
// Missing scalar fields become domain.NoneValue, a page without
// paragraphs yields an empty body.
type SelectorExtractor struct {
	dateFormat DateFormat
}

// NewSelectorExtractor creates a selector based extractor
func NewSelectorExtractor(dateFormat DateFormat) *SelectorExtractor {
	if dateFormat == "" {
		dateFormat = DateContents
	}
	return &SelectorExtractor{dateFormat: dateFormat}
}

// Extract parses htmlContent and pulls title, category, date and body
func (e *SelectorExtractor) Extract(htmlContent string) (*domain.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &domain.Article{
		Title:      ExtractTitle(doc),
		Category:   ExtractCategory(doc),
		CreateDate: ExtractCreateDate(doc, e.dateFormat),
		Body:       ExtractBody(doc),
	}, nil
}

// ExtractTitle returns the text of the first <h1>
func ExtractTitle(doc *goquery.Document) string {
	return firstText(doc, TitleSelector)
}

// ExtractCategory returns the text of the rubric link in the topic header
func ExtractCategory(doc *goquery.Document) string {
	return firstText(doc, CategorySelector)
}

// ExtractCreateDate renders the topic header time element using format
func ExtractCreateDate(doc *goquery.Document, format DateFormat) string {
	sel := doc.Find(DateSelector).First()
	if sel.Length() == 0 {
		return domain.NoneValue
	}
	if format == DateText {
		return sel.Text()
	}
	return contentsRepr(sel.Nodes[0])
}

// ExtractBody returns the text of every paragraph in document order
func ExtractBody(doc *goquery.Document) []string {
	paragraphs := make([]string, 0)
	doc.Find(BodySelector).Each(func(_ int, s *goquery.Selection) {
		paragraphs = append(paragraphs, s.Text())
	})
	return paragraphs
}

func firstText(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return domain.NoneValue
	}
	return sel.Text()
}

// ReadabilityExtractor takes title and paragraphs from go-readability's
// main content detection. Category and date still come from the topic
// header selectors since readability does not know about them.
type ReadabilityExtractor struct {
	selectors *SelectorExtractor
}

// NewReadabilityExtractor creates a readability based extractor
func NewReadabilityExtractor(dateFormat DateFormat) *ReadabilityExtractor {
	return &ReadabilityExtractor{selectors: NewSelectorExtractor(dateFormat)}
}

// Extract parses htmlContent with readability, falling back to the
// selector values for fields readability leaves empty
func (e *ReadabilityExtractor) Extract(htmlContent string) (*domain.Article, error) {
	article, err := e.selectors.Extract(htmlContent)
	if err != nil {
		return nil, err
	}

	parsed, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to extract readable content: %w", err)
	}

	if title := strings.TrimSpace(parsed.Title); title != "" {
		article.Title = title
	}
	article.Body = splitParagraphs(parsed.TextContent)

	return article, nil
}

func splitParagraphs(text string) []string {
	paragraphs := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
