package bookmarklet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DropKind tells the save flow how to obtain the image bytes.
type DropKind string

const (
	DropFile DropKind = "file"
	DropURL  DropKind = "url"
	DropHTML DropKind = "html"
)

// ErrUnsupportedDrop marks payloads that match none of the accepted shapes.
var ErrUnsupportedDrop = errors.New("drop payload matches no supported shape")

const maxDropBytes = 10 << 20

var (
	imageExtRe = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|webp|bmp|avif)(\?\S*)?$`)
	imgSrcRe   = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)
)

// DropPayload is the raw drag-and-drop data as the browser hands it over.
// Fields are checked in declaration order; the first usable one wins.
type DropPayload struct {
	FileName    string
	FileContent []byte
	FileMime    string
	URIList     string
	Text        string
	HTML        string
}

// Drop is a classified, accepted payload.
type Drop struct {
	Kind     DropKind
	Filename string
	Content  []byte
	MimeType string
	URL      string
}

// ClassifyDrop maps a payload to one of the three accepted shapes: an image
// file, a droppable image URL, or an HTML fragment containing an <img> tag.
func ClassifyDrop(payload DropPayload) (*Drop, error) {
	if len(payload.FileContent) > 0 {
		if !strings.HasPrefix(payload.FileMime, "image/") {
			return nil, fmt.Errorf("%w: file is not an image (%s)", ErrUnsupportedDrop, payload.FileMime)
		}
		if len(payload.FileContent) > maxDropBytes {
			return nil, fmt.Errorf("%w: file exceeds 10MB", ErrUnsupportedDrop)
		}
		return &Drop{
			Kind:     DropFile,
			Filename: payload.FileName,
			Content:  payload.FileContent,
			MimeType: payload.FileMime,
		}, nil
	}

	if url := firstURI(payload.URIList); url != "" {
		return &Drop{Kind: DropURL, URL: url}, nil
	}

	if text := strings.TrimSpace(payload.Text); text != "" && isImageURL(text) {
		return &Drop{Kind: DropURL, URL: text}, nil
	}

	if match := imgSrcRe.FindStringSubmatch(payload.HTML); match != nil {
		return &Drop{Kind: DropHTML, URL: match[1]}, nil
	}

	return nil, ErrUnsupportedDrop
}

// firstURI returns the first non-comment line of a text/uri-list payload.
func firstURI(uriList string) string {
	for _, line := range strings.Split(uriList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

func isImageURL(text string) bool {
	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return false
	}
	return imageExtRe.MatchString(text)
}
