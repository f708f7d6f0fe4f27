package service

import "affiliate_bot/internal/domain"

// session is the single in-flight submission. It is owned by the Machine and
// only touched with the machine mutex held.
type session struct {
	epoch   uint64
	chatID  int64
	state   domain.State
	sub     domain.Submission
	prefill *domain.ProductInfo
}

func newSession(epoch uint64, chatID int64) *session {
	return &session{epoch: epoch, chatID: chatID, state: domain.StateIdle}
}

// captureLink keeps the first referral link seen in the session.
func (s *session) captureLink(links []string) bool {
	if s.sub.ReferralLink != "" || len(links) == 0 {
		return false
	}
	s.sub.ReferralLink = links[0]
	return true
}

// addPhotos appends up to max photos in total and returns how many were kept
// and how many were dropped.
func (s *session) addPhotos(items []domain.MediaRef, max int) (added, dropped int) {
	room := max - len(s.sub.Photos)
	if room < 0 {
		room = 0
	}
	if len(items) > room {
		dropped = len(items) - room
		items = items[:room]
	}
	s.sub.Photos = append(s.sub.Photos, items...)
	return len(items), dropped
}

func (s *session) suggestedName() string {
	if s.prefill == nil {
		return ""
	}
	return s.prefill.Name
}

func (s *session) suggestedPrice() string {
	if s.prefill == nil {
		return ""
	}
	return s.prefill.Price
}

func (s *session) suggestedImages() []string {
	if s.prefill == nil {
		return nil
	}
	return s.prefill.ImageURLs
}
