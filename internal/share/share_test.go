package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
)

func TestForScore(t *testing.T) {
	c := ForScore(200, assessment.RankExcellent)

	if c.Title != "The Boland Index" {
		t.Errorf("title = %q", c.Title)
	}
	want := "I just scored 200/250 on The Boland Index. My longevity profile is Excellent. Check yours!"
	if c.Text != want {
		t.Errorf("text = %q\nwant   %q", c.Text, want)
	}
	if c.URL == "" {
		t.Error("URL is empty")
	}
}

func TestTweetURL(t *testing.T) {
	c := ForScore(135, assessment.RankSolid)

	u, err := url.Parse(c.TweetURL())
	if err != nil {
		t.Fatalf("parse tweet URL: %v", err)
	}
	if u.Host != "twitter.com" || u.Path != "/intent/tweet" {
		t.Errorf("unexpected endpoint %s%s", u.Host, u.Path)
	}

	q := u.Query()
	if got := q.Get("text"); got != c.Text {
		t.Errorf("text param = %q, want %q", got, c.Text)
	}
	if got := q.Get("url"); got != c.URL {
		t.Errorf("url param = %q, want %q", got, c.URL)
	}
}

func TestClipboardTextIsJustTheLink(t *testing.T) {
	c := ForScore(200, assessment.RankExcellent)

	if got := c.ClipboardText(); got != c.URL {
		t.Errorf("clipboard text = %q, want only the URL %q", got, c.URL)
	}
}

func TestLinkedInURL(t *testing.T) {
	c := ForScore(250, assessment.RankOptimal)

	u, err := url.Parse(c.LinkedInURL())
	if err != nil {
		t.Fatalf("parse LinkedIn URL: %v", err)
	}
	if !strings.Contains(u.Host, "linkedin.com") {
		t.Errorf("host = %q", u.Host)
	}
	if got := u.Query().Get("url"); got != c.URL {
		t.Errorf("url param = %q, want %q", got, c.URL)
	}
}
