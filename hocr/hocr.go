// Package hocr writes extracted words as hOCR and reads word boxes back.
//
// hOCR is HTML with layout information carried in class and title
// attributes. Each word becomes an ocrx_word span whose title holds
// "bbox x0 y0 x1 y1" in image coordinates: the origin is the top-left corner
// of the page and Y grows downwards.
package hocr

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/glyphword/model"
	"github.com/tsawler/glyphword/text"
)

var (
	// ErrInvalidPage is returned when a page has no usable size.
	ErrInvalidPage = errors.New("hocr: page width and height must be positive")

	// ErrMalformedTitle is returned when a word's title has no valid bbox.
	ErrMalformedTitle = errors.New("hocr: malformed bbox in title")
)

const (
	classPage = "ocr_page"
	classWord = "ocrx_word"
)

// Page describes one page of words in page space (Y up).
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Width and Height are the page size in the same units as the word boxes.
	Width, Height float64

	// Words are written in order. Whitespace words, words without area and
	// words that lie entirely off the page are skipped.
	Words []model.Word
}

// WordBox is a word read back from an hOCR document.
type WordBox struct {
	Text string

	// Box is in image coordinates (top-left origin).
	Box image.Rectangle

	// Confidence is the x_wconf value, or -1 when absent.
	Confidence float64

	// FontName is the x_font value, if any.
	FontName string
}

// BBox converts Box back to page space for a page of the given height.
func (w WordBox) BBox(pageHeight float64) model.BBox {
	return model.NewBBoxFromPoints(
		model.Point{X: float64(w.Box.Min.X), Y: pageHeight - float64(w.Box.Max.Y)},
		model.Point{X: float64(w.Box.Max.X), Y: pageHeight - float64(w.Box.Min.Y)},
	)
}

// Write renders page as an hOCR document.
func Write(w io.Writer, page Page) error {
	if page.Width <= 0 || page.Height <= 0 {
		return ErrInvalidPage
	}
	number := page.Number
	if number < 1 {
		number = 1
	}

	body := element("body")
	pageDiv := element("div",
		html.Attribute{Key: "class", Val: classPage},
		html.Attribute{Key: "id", Val: fmt.Sprintf("page_%d", number)},
		html.Attribute{Key: "title", Val: fmt.Sprintf("image; bbox 0 0 %d %d; ppageno %d",
			int(math.Ceil(page.Width)), int(math.Ceil(page.Height)), number-1)},
	)
	body.AppendChild(pageDiv)

	bounds := model.NewBBox(0, 0, page.Width, page.Height)
	n := 0
	for _, word := range page.Words {
		if word.IsWhitespace() || word.BBox.IsEmpty() || !word.BBox.Intersects(bounds) {
			continue
		}
		n++
		pageDiv.AppendChild(wordSpan(word, number, n, page.Height))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element("html")
	root.AppendChild(head())
	root.AppendChild(body)
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering hOCR: %w", err)
	}
	return nil
}

func head() *html.Node {
	h := element("head")
	title := element("title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: "glyphword"})
	h.AppendChild(title)
	h.AppendChild(element("meta",
		html.Attribute{Key: "http-equiv", Val: "Content-Type"},
		html.Attribute{Key: "content", Val: "text/html;charset=utf-8"},
	))
	h.AppendChild(element("meta",
		html.Attribute{Key: "name", Val: "ocr-system"},
		html.Attribute{Key: "content", Val: "glyphword"},
	))
	h.AppendChild(element("meta",
		html.Attribute{Key: "name", Val: "ocr-capabilities"},
		html.Attribute{Key: "content", Val: classPage + " " + classWord},
	))
	return h
}

func wordSpan(word model.Word, page, n int, pageHeight float64) *html.Node {
	box := imageRect(word.BBox, pageHeight)
	title := fmt.Sprintf("bbox %d %d %d %d", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	if word.FontName != "" {
		title += "; x_font " + word.FontName
	}

	attrs := []html.Attribute{
		{Key: "class", Val: classWord},
		{Key: "id", Val: fmt.Sprintf("word_%d_%d", page, n)},
		{Key: "title", Val: title},
	}
	if word.Direction == text.RTL {
		attrs = append(attrs, html.Attribute{Key: "dir", Val: "rtl"})
	}

	span := element("span", attrs...)
	span.AppendChild(&html.Node{Type: html.TextNode, Data: word.Text})
	return span
}

// imageRect flips b into top-left image coordinates, rounding outwards.
func imageRect(b model.BBox, pageHeight float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.Left())),
		int(math.Floor(pageHeight-b.Top())),
		int(math.Ceil(b.Right())),
		int(math.Ceil(pageHeight-b.Bottom())),
	)
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

// ReadWords parses an hOCR document and returns its words in document order.
func ReadWords(r io.Reader) ([]WordBox, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var out []WordBox
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && hasClass(n, classWord) {
			wb, err := parseWord(n)
			if err != nil {
				return err
			}
			out = append(out, wb)
			return nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(doc); err != nil {
		return nil, err
	}
	return out, nil
}

func parseWord(n *html.Node) (WordBox, error) {
	wb := WordBox{
		Text:       textContent(n),
		Confidence: -1,
	}

	foundBBox := false
	for _, prop := range strings.Split(getAttr(n, "title"), ";") {
		fields := strings.Fields(prop)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "bbox":
			box, err := parseBBox(fields[1:])
			if err != nil {
				return WordBox{}, fmt.Errorf("word %q: %w", wb.Text, err)
			}
			wb.Box = box
			foundBBox = true
		case "x_wconf":
			if len(fields) == 2 {
				if c, err := strconv.ParseFloat(fields[1], 64); err == nil {
					wb.Confidence = c
				}
			}
		case "x_font":
			wb.FontName = strings.Join(fields[1:], " ")
		}
	}

	if !foundBBox {
		return WordBox{}, fmt.Errorf("word %q: %w", wb.Text, ErrMalformedTitle)
	}
	return wb, nil
}

func parseBBox(fields []string) (image.Rectangle, error) {
	if len(fields) != 4 {
		return image.Rectangle{}, ErrMalformedTitle
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%w: %v", ErrMalformedTitle, err)
		}
		v[i] = n
	}
	return image.Rect(v[0], v[1], v[2], v[3]), nil
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
