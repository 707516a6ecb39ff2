package tt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/reactkit/reactor"
)

// RenderTranscript renders a message list in a stable line-oriented form
// for diffing.
func RenderTranscript(messages []reactor.Message) string {
	var sb strings.Builder
	for _, msg := range messages {
		fmt.Fprintf(&sb, "[%s] %s\n", msg.Role, msg.Content)
	}
	return sb.String()
}

// AssertTranscript fails the test with a unified diff when the captured
// message list differs from the expected one. Diffs read far better than
// testify's one-line struct dump once transcripts grow past a couple of
// messages.
func AssertTranscript(t *testing.T, want, got []reactor.Message) {
	t.Helper()

	wantText := RenderTranscript(want)
	gotText := RenderTranscript(got)
	if wantText == gotText {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(wantText),
		B:        difflib.SplitLines(gotText),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("transcript mismatch (diff failed: %v)\nwant:\n%s\ngot:\n%s",
			err, wantText, gotText)
	}
	t.Fatalf("transcript mismatch:\n%s", diff)
}
