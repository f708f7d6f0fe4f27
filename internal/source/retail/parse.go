package retail

import (
	"io"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"affiliate_bot/internal/domain"
)

const minNameLength = 4

type pageFacts struct {
	meta       map[string]string
	images     []string
	h1         string
	title      string
	namedClass string
	priceClass string
}

func parseProduct(r io.Reader, base *url.URL) (domain.ProductInfo, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return domain.ProductInfo{}, err
	}

	facts := &pageFacts{meta: make(map[string]string)}
	facts.walk(doc)

	info := domain.ProductInfo{
		Name:  facts.name(),
		Price: facts.price(),
	}

	seen := make(map[string]bool)
	for _, raw := range facts.images {
		abs := resolve(base, raw)
		if abs == "" || seen[abs] {
			continue
		}
		seen[abs] = true
		info.ImageURLs = append(info.ImageURLs, abs)
	}
	return info, nil
}

func (f *pageFacts) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Meta:
			f.addMeta(n)
		case atom.Title:
			if f.title == "" {
				f.title = textOf(n)
			}
		case atom.H1:
			if f.h1 == "" {
				f.h1 = textOf(n)
			}
		}

		class := strings.ToLower(attr(n, "class"))
		if class != "" && n.DataAtom != atom.Meta {
			if f.priceClass == "" && (strings.Contains(class, "price") || strings.Contains(class, "amount")) {
				if t := textOf(n); hasDigit(t) {
					f.priceClass = t
				}
			}
			if f.namedClass == "" && (strings.Contains(class, "product-title") || strings.Contains(class, "product-name")) {
				f.namedClass = textOf(n)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
}

func (f *pageFacts) addMeta(n *html.Node) {
	key := strings.ToLower(attr(n, "property"))
	if key == "" {
		key = strings.ToLower(attr(n, "name"))
	}
	if key == "" {
		key = strings.ToLower(attr(n, "itemprop"))
	}
	content := strings.TrimSpace(attr(n, "content"))
	if key == "" || content == "" {
		return
	}

	if key == "og:image" || key == "og:image:url" || key == "twitter:image" || key == "image" {
		f.images = append(f.images, content)
		return
	}
	if _, ok := f.meta[key]; !ok {
		f.meta[key] = content
	}
}

func (f *pageFacts) name() string {
	for _, candidate := range []string{f.meta["og:title"], f.h1, f.namedClass, f.meta["twitter:title"], f.title} {
		if utf8.RuneCountInString(candidate) >= minNameLength {
			return candidate
		}
	}
	return ""
}

func (f *pageFacts) price() string {
	for _, key := range []string{"product:price:amount", "og:price:amount", "price"} {
		amount := f.meta[key]
		if !hasDigit(amount) {
			continue
		}
		currency := f.meta[strings.TrimSuffix(key, "amount")+"currency"]
		if key == "price" {
			currency = f.meta["pricecurrency"]
		}
		if currency != "" {
			return amount + " " + currency
		}
		return amount
	}
	return f.priceClass
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textOf returns the visible text below n with whitespace collapsed.
func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func resolve(base *url.URL, raw string) string {
	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return ""
	}
	return ref.String()
}
