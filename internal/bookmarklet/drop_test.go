package bookmarklet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDropFile(t *testing.T) {
	drop, err := ClassifyDrop(DropPayload{
		FileName:    "meme.png",
		FileContent: []byte{0x89, 0x50},
		FileMime:    "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, DropFile, drop.Kind)
	assert.Equal(t, "meme.png", drop.Filename)
}

func TestClassifyDropRejectsNonImageFile(t *testing.T) {
	_, err := ClassifyDrop(DropPayload{
		FileName:    "notes.pdf",
		FileContent: []byte{0x25},
		FileMime:    "application/pdf",
	})
	assert.ErrorIs(t, err, ErrUnsupportedDrop)
}

func TestClassifyDropRejectsOversizedFile(t *testing.T) {
	_, err := ClassifyDrop(DropPayload{
		FileName:    "huge.png",
		FileContent: make([]byte, maxDropBytes+1),
		FileMime:    "image/png",
	})
	assert.ErrorIs(t, err, ErrUnsupportedDrop)
}

func TestClassifyDropURIList(t *testing.T) {
	drop, err := ClassifyDrop(DropPayload{
		URIList: "# dragged from gallery\nhttps://img.test/meme.webp\nhttps://img.test/second.png",
	})
	require.NoError(t, err)

	assert.Equal(t, DropURL, drop.Kind)
	assert.Equal(t, "https://img.test/meme.webp", drop.URL)
}

func TestClassifyDropPlainTextImageURL(t *testing.T) {
	drop, err := ClassifyDrop(DropPayload{Text: "https://img.test/meme.jpg?width=640"})
	require.NoError(t, err)

	assert.Equal(t, DropURL, drop.Kind)
	assert.Equal(t, "https://img.test/meme.jpg?width=640", drop.URL)
}

func TestClassifyDropPlainTextNonImageURL(t *testing.T) {
	_, err := ClassifyDrop(DropPayload{Text: "https://example.com/article"})
	assert.ErrorIs(t, err, ErrUnsupportedDrop)
}

func TestClassifyDropHTMLFragment(t *testing.T) {
	html := `<div class="post"><img alt="meme" src="https://img.test/drake.png"><img src="https://img.test/other.png"></div>`

	drop, err := ClassifyDrop(DropPayload{HTML: html})
	require.NoError(t, err)

	assert.Equal(t, DropHTML, drop.Kind)
	assert.Equal(t, "https://img.test/drake.png", drop.URL)
}

func TestClassifyDropEmptyPayload(t *testing.T) {
	_, err := ClassifyDrop(DropPayload{})
	assert.ErrorIs(t, err, ErrUnsupportedDrop)
}
