package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewing-items/internal/diagnostic"
)

func sampleDiagnostics() []diagnostic.Diagnostic {
	sink := diagnostic.NewSink()
	sink.MissingField("items/a.yml", "apple.material")
	sink.Unresolvable("items/a.yml", "pie.material", "pumpkin_pi", []string{"PUMPKIN_PIE"})
	sink.FileError("items/b.yml", errors.New("yaml: line 1: did not find expected node content"))

	return sink.Items()
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.True(t, FormatMsgpack.Binary())
	assert.True(t, FormatCBOR.Binary())
	assert.False(t, FormatJSON.Binary())
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleDiagnostics(), FormatPretty, Options{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "warning  items/a.yml apple.material  the key apple.material"))
	assert.True(t, strings.HasPrefix(lines[1], "warning  items/a.yml pie.material    the value pumpkin_pi"))
	assert.Equal(t, strings.Repeat(" ", 7+2+26+2)+"did you mean PUMPKIN_PIE?", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "error    items/b.yml                 failed to load items/b.yml"))
	assert.Equal(t, "2 warnings, 1 error", lines[4])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWritePrettyColor(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleDiagnostics(), FormatPretty, Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWritePrettyTruncates(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleDiagnostics(), FormatPretty, Options{Max: 1}))

	out := buf.String()
	assert.Contains(t, out, "apple.material")
	assert.NotContains(t, out, "pie.material")
	assert.Contains(t, out, "... and 2 more diagnostics not shown")
	assert.Contains(t, out, "2 warnings, 1 error")
}

func TestWritePrettyEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, nil, FormatPretty, Options{}))
	assert.Equal(t, "no problems found\n", buf.String())
}

func TestWriteShort(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleDiagnostics(), FormatShort, Options{}))

	assert.Equal(t, strings.Join([]string{
		"items/a.yml:apple.material: warning[missing_field]: the key apple.material in items/a.yml does not exist or is incorrect",
		"items/a.yml:pie.material: warning[unresolvable_reference]: the value pumpkin_pi of key pie.material in items/a.yml is incorrect",
		"items/b.yml: error[file_error]: failed to load items/b.yml: yaml: line 1: did not find expected node content",
	}, "\n")+"\n", buf.String())
}

func TestStructuredFormatsRoundTrip(t *testing.T) {
	diags := sampleDiagnostics()
	expected := NewOutput(diags, Options{})

	for _, f := range []Format{FormatJSON, FormatMsgpack, FormatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Write(&buf, diags, f, Options{}))

			got, err := Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestNewOutputTruncates(t *testing.T) {
	out := NewOutput(sampleDiagnostics(), Options{Max: 2})

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Truncated)
	require.Len(t, out.Diagnostics, 2)
	assert.Equal(t, "unresolvable_reference", out.Diagnostics[1].Code)
	assert.Equal(t, "pumpkin_pi", out.Diagnostics[1].Value)
	assert.Equal(t, []string{"PUMPKIN_PIE"}, out.Diagnostics[1].Suggestions)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), FormatPretty)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
