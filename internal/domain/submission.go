package domain

type State int

const (
	StateIdle State = iota
	StateAwaitingMedia
	StateAwaitingPhotosOnly
	StateAwaitingProductName
	StateAwaitingPrice
	StateAwaitingCategory
	StateAwaitingConfirmation
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingMedia:
		return "awaiting_media"
	case StateAwaitingPhotosOnly:
		return "awaiting_photos_only"
	case StateAwaitingProductName:
		return "awaiting_product_name"
	case StateAwaitingPrice:
		return "awaiting_price"
	case StateAwaitingCategory:
		return "awaiting_category"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Submission is the single in-flight draft of the operator.
type Submission struct {
	ReferralLink string
	Photos       []MediaRef
	ProductName  string
	Price        string
	Category     string
}

// Clone returns a copy that shares no slices with s.
func (s Submission) Clone() Submission {
	out := s
	out.Photos = append([]MediaRef(nil), s.Photos...)
	return out
}

// ProductInfo is what the pre-fill scraper could extract from a product page.
type ProductInfo struct {
	Name      string
	Price     string
	ImageURLs []string
}

func (p ProductInfo) Empty() bool {
	return p.Name == "" && p.Price == "" && len(p.ImageURLs) == 0
}

type Label struct {
	Name    string `yaml:"name"`
	Hashtag string `yaml:"hashtag"`
	Emoji   string `yaml:"emoji"`
}

// Category is a configured product category with per-locale labels.
type Category struct {
	Key    string           `yaml:"key"`
	Labels map[string]Label `yaml:"labels"`
}

// Label returns the label for locale, falling back to the first of fallbacks that exists.
func (c Category) Label(locale string, fallbacks ...string) (Label, bool) {
	if l, ok := c.Labels[locale]; ok {
		return l, true
	}
	for _, f := range fallbacks {
		if l, ok := c.Labels[f]; ok {
			return l, true
		}
	}
	return Label{}, false
}
