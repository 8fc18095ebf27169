package notify_test

import (
	"strings"
	"testing"

	"github.com/newsroom-api/internal/notify"
)

func TestExcerptShortTextUnchanged(t *testing.T) {
	text := "A short announcement about the merger."
	if got := notify.Excerpt(text); got != text {
		t.Errorf("Excerpt() = %q, want unchanged input", got)
	}
}

func TestExcerptTrimsWhitespace(t *testing.T) {
	if got := notify.Excerpt("  padded text \n"); got != "padded text" {
		t.Errorf("Excerpt() = %q, want %q", got, "padded text")
	}
}

func TestExcerptExactLimitUnchanged(t *testing.T) {
	text := strings.Repeat("x", notify.ExcerptLimit)
	if got := notify.Excerpt(text); got != text {
		t.Errorf("Excerpt() altered text of exactly %d chars", notify.ExcerptLimit)
	}
}

func TestExcerptLongTextWordBoundary(t *testing.T) {
	// 300 characters: 50 repetitions of a 5-character group "aaaa " so a
	// space falls every 5 characters.
	text := strings.Repeat("aaaa ", 60)
	if len(text) != 300 {
		t.Fatalf("test literal is %d chars, want 300", len(text))
	}

	got := notify.Excerpt(text)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Excerpt() = %q, want ellipsis suffix", got)
	}
	prefix := strings.TrimSuffix(got, "...")
	if len(prefix) > notify.ExcerptLimit {
		t.Errorf("prefix is %d chars, want <= %d", len(prefix), notify.ExcerptLimit)
	}
	if strings.HasSuffix(prefix, " ") {
		t.Errorf("prefix %q ends with a space", prefix)
	}
	// The cut may not split a word: the prefix must be whole groups of
	// "aaaa" joined by spaces.
	for _, word := range strings.Split(prefix, " ") {
		if word != "aaaa" {
			t.Errorf("word %q was cut mid-word", word)
		}
	}
	if !strings.HasPrefix(text, prefix) {
		t.Errorf("prefix %q is not a prefix of the input", prefix)
	}
}
