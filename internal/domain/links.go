package domain

import "regexp"

var linkPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// ExtractLinks returns every http(s) URL found in text, in order of appearance.
func ExtractLinks(text string) []string {
	return linkPattern.FindAllString(text, -1)
}

// Links returns the links attached to the input: those carried by its media event,
// or else the ones found in its text.
func (in Input) Links() []string {
	if in.Media != nil && len(in.Media.Links) > 0 {
		return in.Media.Links
	}
	return ExtractLinks(in.Text)
}
