package service

import (
	"context"
	"strings"

	"affiliate_bot/internal/domain"
)

type Event int

const (
	EventUnknown Event = iota
	EventMedia
	EventText
	EventCategory
	EventConfirm
	EventCancelButton
	EventSkip
	EventImages
)

func (e Event) String() string {
	switch e {
	case EventMedia:
		return "media"
	case EventText:
		return "text"
	case EventCategory:
		return "category"
	case EventConfirm:
		return "confirm"
	case EventCancelButton:
		return "cancel_button"
	case EventSkip:
		return "skip"
	case EventImages:
		return "images"
	default:
		return "unknown"
	}
}

const (
	callbackCategoryPrefix = "cat_"
	callbackConfirm        = "confirm_publish"
	callbackCancel         = "cancel_publish"
)

// classify maps an input that is not a global command to a table event.
func classify(in domain.Input) Event {
	switch in.Kind {
	case domain.InputCommand:
		switch in.Command {
		case "skip":
			return EventSkip
		case "images":
			return EventImages
		}
		return EventUnknown
	case domain.InputCallback:
		switch {
		case in.Data == callbackConfirm:
			return EventConfirm
		case in.Data == callbackCancel:
			return EventCancelButton
		case strings.HasPrefix(in.Data, callbackCategoryPrefix):
			return EventCategory
		}
		return EventUnknown
	default:
		if in.Media != nil && (in.Media.Item != nil || in.Media.BatchID != "") {
			return EventMedia
		}
		return EventText
	}
}

type transitionKey struct {
	state domain.State
	event Event
}

type transition func(m *Machine, ctx context.Context, in domain.Input)

// transitionTable lists every accepted (state, event) pair. Any pair not listed
// re-prompts the current state.
func transitionTable() map[transitionKey]transition {
	return map[transitionKey]transition{
		{domain.StateIdle, EventMedia}: (*Machine).begin,
		{domain.StateIdle, EventText}:  (*Machine).begin,

		{domain.StateAwaitingMedia, EventMedia}: (*Machine).collectMedia,
		{domain.StateAwaitingMedia, EventText}:  (*Machine).textWhileCollecting,

		{domain.StateAwaitingPhotosOnly, EventMedia}:  (*Machine).photoAfterLink,
		{domain.StateAwaitingPhotosOnly, EventImages}: (*Machine).useProductImages,

		{domain.StateAwaitingProductName, EventText}:  (*Machine).setName,
		{domain.StateAwaitingProductName, EventSkip}:  (*Machine).skipName,
		{domain.StateAwaitingProductName, EventMedia}: (*Machine).lateMedia,

		{domain.StateAwaitingPrice, EventText}:  (*Machine).setPrice,
		{domain.StateAwaitingPrice, EventSkip}:  (*Machine).skipPrice,
		{domain.StateAwaitingPrice, EventMedia}: (*Machine).lateMedia,

		{domain.StateAwaitingCategory, EventCategory}: (*Machine).setCategory,
		{domain.StateAwaitingCategory, EventMedia}:    (*Machine).lateMedia,

		{domain.StateAwaitingConfirmation, EventConfirm}:      (*Machine).publish,
		{domain.StateAwaitingConfirmation, EventCancelButton}: (*Machine).abortFromButton,
		{domain.StateAwaitingConfirmation, EventMedia}:        (*Machine).mediaLocked,
	}
}
