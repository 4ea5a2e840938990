package bookmarklet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBestMode(t *testing.T) {
	tests := []struct {
		name string
		page PageInfo
		want Mode
	}{
		{
			name: "meme heavy site with many images",
			page: PageInfo{Hostname: "reddit.com", ImageCount: 8, TextInputCount: 0},
			want: ModeSave,
		},
		{
			name: "chat site",
			page: PageInfo{Hostname: "discord.com", ImageCount: 2, TextInputCount: 1},
			want: ModeSearch,
		},
		{
			name: "meme site but few images",
			page: PageInfo{Hostname: "imgur.com", ImageCount: 3, TextInputCount: 0},
			want: ModeSearch,
		},
		{
			name: "chat site with zero inputs still searches",
			page: PageInfo{Hostname: "slack.com", ImageCount: 20, TextInputCount: 0},
			want: ModeSearch,
		},
		{
			name: "unknown image gallery",
			page: PageInfo{Hostname: "example.com", ImageCount: 15, TextInputCount: 0},
			want: ModeSave,
		},
		{
			name: "plain article page",
			page: PageInfo{Hostname: "example.com", ImageCount: 2, TextInputCount: 0},
			want: ModeSearch,
		},
		{
			name: "www prefix and subdomain normalization",
			page: PageInfo{Hostname: "www.old.reddit.com", ImageCount: 9, TextInputCount: 0},
			want: ModeSave,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectBestMode(tc.page))
		})
	}
}

func TestTextInputsBeatImageCount(t *testing.T) {
	// Any text input on a non-meme site means the user can type a search.
	page := PageInfo{Hostname: "example.com", ImageCount: 8, TextInputCount: 1}
	assert.Equal(t, ModeSearch, DetectBestMode(page))
}
