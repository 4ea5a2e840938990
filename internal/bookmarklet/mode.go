package bookmarklet

import "strings"

// Mode is the overlay flavor the bookmarklet opens with.
type Mode string

const (
	ModeSave   Mode = "save"
	ModeSearch Mode = "search"
)

// PageInfo is the page snapshot the browser side reports. Counting images and
// inputs happens in the browser; the decision lives here.
type PageInfo struct {
	Hostname       string
	ImageCount     int
	TextInputCount int
}

// Sites where the dominant activity is browsing images worth saving.
var memeHeavySites = []string{
	"reddit.com",
	"imgur.com",
	"instagram.com",
	"twitter.com",
	"x.com",
	"9gag.com",
	"ifunny.co",
}

// Sites where the user is mid-conversation and most likely wants to find a
// meme to paste.
var chatSites = []string{
	"discord.com",
	"slack.com",
	"teams.microsoft.com",
	"web.whatsapp.com",
	"telegram.org",
}

// DetectBestMode picks the overlay mode for a page. Rules are checked in
// order; the first match wins.
func DetectBestMode(page PageInfo) Mode {
	host := normalizeHost(page.Hostname)

	if hostListed(host, memeHeavySites) && page.ImageCount > 5 {
		return ModeSave
	}
	if hostListed(host, chatSites) || page.TextInputCount > 0 {
		return ModeSearch
	}
	if page.ImageCount > 10 && page.TextInputCount < 3 {
		return ModeSave
	}
	return ModeSearch
}

func normalizeHost(hostname string) string {
	return strings.TrimPrefix(strings.ToLower(hostname), "www.")
}

func hostListed(host string, sites []string) bool {
	for _, site := range sites {
		if host == site || strings.HasSuffix(host, "."+site) {
			return true
		}
	}
	return false
}
