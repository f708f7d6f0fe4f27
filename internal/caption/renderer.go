package caption

import (
	"bytes"
	"fmt"

	"affiliate_bot/internal/domain"
)

const (
	defaultEmoji   = "✨"
	defaultHashtag = "#FASHION"
)

type captionData struct {
	ProductName  string
	Price        string
	ReferralLink string
	Emoji        string
	Hashtag      string
	CategoryName string
}

// Renderer produces destination captions. It is pure and safe for concurrent use.
type Renderer struct {
	catalog    *Catalog
	categories map[string]domain.Category
}

func NewRenderer(catalog *Catalog, categories []domain.Category) *Renderer {
	byKey := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byKey[c.Key] = c
	}
	return &Renderer{catalog: catalog, categories: byKey}
}

// Render builds the caption for one destination locale.
func (r *Renderer) Render(productName, price, referralLink, category, locale string) (string, error) {
	resolved := r.catalog.Resolve(locale)

	data := captionData{
		ProductName:  productName,
		Price:        price,
		ReferralLink: referralLink,
		Emoji:        defaultEmoji,
		Hashtag:      defaultHashtag,
	}
	if cat, ok := r.categories[category]; ok {
		if label, ok := cat.Label(locale, resolved, BaseLocale); ok {
			if label.Emoji != "" {
				data.Emoji = label.Emoji
			}
			if label.Hashtag != "" {
				data.Hashtag = label.Hashtag
			}
			data.CategoryName = label.Name
		}
	}

	var out bytes.Buffer
	if err := r.catalog.captionTemplate(resolved).Execute(&out, data); err != nil {
		return "", fmt.Errorf("render caption for %s: %w", locale, err)
	}
	return out.String(), nil
}

// CategoryName returns the display name of a category in locale, or the key.
func (r *Renderer) CategoryName(key, locale string) string {
	cat, ok := r.categories[key]
	if !ok {
		return key
	}
	label, ok := cat.Label(locale, r.catalog.Resolve(locale), BaseLocale)
	if !ok || label.Name == "" {
		return key
	}
	if label.Emoji != "" {
		return label.Emoji + " " + label.Name
	}
	return label.Name
}

func (r *Renderer) Catalog() *Catalog {
	return r.catalog
}
