package domain

import "time"

// NoticeKind classifies a transient notification.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient user-visible message.
type Notice struct {
	Text      string
	Kind      NoticeKind
	ExpiresAt time.Time
}
