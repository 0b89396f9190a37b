// Package share builds the shareable representations of a finished
// score: the message text, social intent URLs, and a clipboard copy.
package share

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"

	"github.com/wesboland/bolandindex/internal/assessment"
)

const siteURL = "https://thebolandindex.com"

// Content is a ready-to-share rendering of one score.
type Content struct {
	Title string
	Text  string
	URL   string
}

// ForScore builds the share content for a total and its rank.
func ForScore(total int, rank assessment.Rank) Content {
	return Content{
		Title: "The Boland Index",
		Text: fmt.Sprintf("I just scored %d/250 on The Boland Index. My longevity profile is %s. Check yours!",
			total, rank),
		URL: siteURL,
	}
}

// TweetURL returns a web intent link that pre-fills the share text.
func (c Content) TweetURL() string {
	return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(c.Text) +
		"&url=" + url.QueryEscape(c.URL)
}

// LinkedInURL returns the LinkedIn offsite share link.
func (c Content) LinkedInURL() string {
	return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(c.URL)
}

// ClipboardText is what the copy-link affordance puts on the clipboard:
// just the URL, not the message text.
func (c Content) ClipboardText() string {
	return c.URL
}

// CopyToClipboard puts the share link on the system clipboard.
func (c Content) CopyToClipboard() error {
	return clipboard.WriteAll(c.ClipboardText())
}
