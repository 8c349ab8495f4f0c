package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/unifile/internal/naming"
)

func TestLog_RecordFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	require.NoError(t, l.Record(StatusRenamed, "sub/tést.txt", "sub/test.txt"))
	require.NoError(t, l.Record(StatusPlanned, "a\tb.txt", "awithNull.txt"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "renamed\tsub/tést.txt\tsub/test.txt", lines[0])
	assert.Equal(t, "planned\t\"a\\tb.txt\"\tawithNull.txt", lines[1])
}

func TestLog_HeaderAndSummary(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	require.NoError(t, l.Begin(Header{
		Time:   time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
		Mode:   naming.ModeASCII,
		DryRun: true,
		Root:   "/srv/share",
	}))
	require.NoError(t, l.End(Summary{Renamed: 2, Unchanged: 5, Failed: 1}))

	assert.Equal(t,
		"# unifile 2026-10-19T09:00:00Z mode=ascii dry-run=true root=/srv/share\n"+
			"# summary renamed=2 unchanged=5 excluded=0 failed=1\n",
		buf.String())
}

func TestParseRecord_RoundTrip(t *testing.T) {
	cases := []Record{
		{StatusRenamed, "dir/münchen.doc", "dir/muenchen.doc"},
		{StatusPlanned, "new\nline", "newwithNull"},
		{StatusError, "bad\xff.txt", "bad.txt"},
		{StatusRenamed, `"quoted".txt`, "quoted.txt"},
	}
	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, New(&buf).Record(want.Status, want.From, want.To))

		got, err := ParseRecord(strings.TrimSuffix(buf.String(), "\n"))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, line := range []string{
		"# summary renamed=1",
		"renamed\tonly-two",
		"moved\ta\tb",
		"renamed\t\"unterminated\tb",
	} {
		_, err := ParseRecord(line)
		assert.ErrorIs(t, err, ErrMalformedRecord, "line %q", line)
	}
}

func TestOpen_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "renames.log")

	for i := 0; i < 2; i++ {
		l, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, l.Record(StatusRenamed, "a", "b"))
		require.NoError(t, l.Close())
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "renamed\ta\tb\nrenamed\ta\tb\n", string(b))
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, err := Open("")
	require.NoError(t, err)
	assert.NoError(t, l.Record(StatusRenamed, "a", "b"))
	assert.NoError(t, l.Close())
}

func TestQuoteField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain/name.txt", "plain/name.txt"},
		{"münchen.doc", "münchen.doc"},
		{"tab\there", `"tab\there"`},
		{"del\x7f", `"del\x7f"`},
		{"bad\xff", `"bad\xff"`},
		{`"lead`, `"\"lead"`},
		{`mid"quote`, `mid"quote`},
	}
	for _, tt := range tests {
		got := quoteField(tt.in)
		assert.Equal(t, tt.want, got, "quoteField(%q)", tt.in)

		back, err := unquoteField(got)
		require.NoError(t, err)
		assert.Equal(t, tt.in, back)
	}
}
