package domain

import (
	"strings"
	"time"
)

// Field limits enforced by the project pipeline.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 2000
	MaxTechs          = 10
	MaxImages         = 10
)

// ListDelimiter joins tech and image lists into the single scalar column the
// store keeps. Members containing the delimiter are rejected at validation.
const ListDelimiter = ","

// UploadPathPrefix marks image references hosted by this server. References
// carrying it are rewritten to absolute URLs on serialization.
const UploadPathPrefix = "/static/uploads/"

// Project is a portfolio entry. Techs and Images hold the delimiter-encoded
// storage form; decode with DecodeList before presenting them.
type Project struct {
	ID             string
	Title          string
	Description    string
	TitleEN        string
	DescriptionEN  string
	Techs          string
	RepoURL        string
	LiveURL        string
	Images         string
	ImageURL       string // legacy single-image field, main-image fallback
	MainImageIndex int
	CreatedAt      time.Time
}

// EncodeList joins items into the delimited storage form.
func EncodeList(items []string) string {
	return strings.Join(items, ListDelimiter)
}

// DecodeList splits the delimited storage form back into an ordered list,
// trimming whitespace and dropping empty segments. The round-trip through
// EncodeList is lossless for members free of the delimiter.
func DecodeList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ListDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
