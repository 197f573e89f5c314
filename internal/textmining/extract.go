// Package textmining implements the article analysis behind the word-cloud
// page: paragraph extraction from fetched HTML, text cleaning and stop-word
// filtered word counting. Everything here is pure; the network fetch lives
// in the service layer.
package textmining

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractParagraphs concatenates the text content of every <p> element in
// the document, separated by single spaces.
func ExtractParagraphs(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse article markup: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " "), nil
}
