package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/xfetch-cli/xfetch/pkg/api/twitter"
)

func formatTweet(t twitter.Tweet) string {
	author := t.AuthorHandle
	if author == "" {
		author = t.AuthorID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] @%s (%s)\n", t.CreatedAt.Format(time.RFC3339), author, t.ID)
	b.WriteString(t.Text)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  likes=%d retweets=%d replies=%d\n",
		t.Metrics.Likes, t.Metrics.Retweets, t.Metrics.Replies)
	return b.String()
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func (s *srv) printTweet(t twitter.Tweet) {
	fmt.Fprintln(s.out, formatTweet(t))
}

func (s *srv) printReply(t twitter.Tweet) {
	fmt.Fprintf(s.out, "Posted reply: %s - %s\n", t.ID, t.Text)
}

// printRaw writes the payload exactly as received, byte for byte.
func (s *srv) printRaw(raw []byte) error {
	_, err := s.out.Write(raw)
	return err
}
