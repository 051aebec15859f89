package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nephila016/emailcanon/internal/inspector"
)

func inspectAll(emails ...string) []*inspector.Result {
	return inspector.New(nil, nil, nil).InspectBatch(emails)
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"out.json":   FormatJSON,
		"OUT.CSV":    FormatCSV,
		"out.jsonl":  FormatJSONL,
		"out.ndjson": FormatJSONL,
		"out.txt":    FormatTXT,
		"out":        FormatTXT,
	}
	for name, want := range tests {
		require.Equal(t, want, DetectFormat(name), name)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteResultsToFile(path, inspectAll("a.b@gmail.com", "nope")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []inspector.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "ab@gmail.com", decoded[0].Canonical)
	require.Equal(t, inspector.StatusMalformed, decoded[1].Status)
}

func TestWriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, WriteResultsToFile(path, inspectAll("a@gmail.com", "b@gmail.com", "c@gmail.com")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var r inspector.Result
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &r))
	require.Equal(t, "c@gmail.com", r.Email)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteResultsToFile(path, inspectAll("First.Last+x@GoogleMail.com", "broken")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, CSVHeader, records[0])

	row := records[1]
	require.Len(t, row, len(CSVHeader))
	require.Equal(t, "First.Last+x@GoogleMail.com", row[0])
	require.Equal(t, "first.last+x@googlemail.com", row[1])
	require.Equal(t, "valid", row[2])
	require.Equal(t, "firstlast@gmail.com", row[10])
	require.Equal(t, "gmail", row[11])
	require.Equal(t, "true", row[12])
	require.Equal(t, "googlemail.com", row[15])

	require.Equal(t, "malformed", records[2][2])
}

func TestWriteTXTUniqueCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	results := inspectAll("a.b@gmail.com", "ab+x@googlemail.com", "c@company.org", "a..b@company.org", "junk")
	require.NoError(t, WriteResultsToFile(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ab@gmail.com\nc@company.org\n", string(data))
}

func TestOpenAll(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "all.csv")
	txtPath := filepath.Join(dir, "unique.txt")

	w, err := OpenAll(csvPath, txtPath)
	require.NoError(t, err)
	for _, r := range inspectAll("x@gmail.com", "x+1@gmail.com") {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	txt, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	require.Equal(t, "x@gmail.com\n", string(txt))

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(string(csvData), "\n"))

	_, err = OpenAll(filepath.Join(dir, "missing", "out.csv"))
	require.Error(t, err)
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)
	for _, r := range inspectAll("a+b@gmail.com", "nope") {
		require.NoError(t, w.Write(r))
	}
	require.Contains(t, buf.String(), "a+b@gmail.com: valid corporate -> a@gmail.com")
	require.Contains(t, buf.String(), "nope: malformed")
}

func TestDuplicateGroups(t *testing.T) {
	results := inspectAll(
		"john.doe@gmail.com",
		"unique@company.org",
		"JohnDoe+news@googlemail.com",
		"john.doe@gmail.com",
		"jane-promo@yahoo.com",
		"jane@yahoo.com",
		"broken",
	)

	groups := DuplicateGroups(results)
	require.Equal(t, []DuplicateGroup{
		{Canonical: "johndoe@gmail.com", Provider: "gmail", Emails: []string{"john.doe@gmail.com", "johndoe+news@googlemail.com"}},
		{Canonical: "jane@yahoo.com", Provider: "yahoo", Emails: []string{"jane-promo@yahoo.com", "jane@yahoo.com"}},
	}, groups)

	require.Empty(t, DuplicateGroups(inspectAll("a@company.org", "a@company.org")))
}
