package domain

import "time"

type MediaKind int

const (
	// MediaRemote is a handle the destination transport already knows (e.g. a file id).
	MediaRemote MediaKind = iota
	// MediaLocal is a path to bytes held on local disk.
	MediaLocal
)

// MediaRef is an opaque handle to one media payload.
type MediaRef struct {
	Kind MediaKind
	Ref  string
}

func RemoteMedia(id string) MediaRef {
	return MediaRef{Kind: MediaRemote, Ref: id}
}

func LocalMedia(path string) MediaRef {
	return MediaRef{Kind: MediaLocal, Ref: path}
}

func (m MediaRef) IsLocal() bool {
	return m.Kind == MediaLocal
}

// MediaEvent is one inbound media unit. An empty BatchID marks a standalone item.
type MediaEvent struct {
	BatchID   string
	Item      *MediaRef
	Links     []string
	ArrivedAt time.Time
}

// Batch is the consolidated output of one quiet window.
type Batch struct {
	ID         string
	Items      []MediaRef
	Generation uint64
}
