package qif

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeRoundTrip(t *testing.T) {
	q1 := parseSample(t)
	out := EncodeString(q1)

	q2, err := ParseString(out, Config{})
	if err != nil {
		t.Fatalf("re-parse failed: %v\noutput:\n%s", err, out)
	}
	if !q1.Equal(q2) {
		t.Fatalf("round trip lost data\noutput:\n%s", out)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	q1 := parseSample(t)
	out1 := EncodeString(q1)

	q2, err := ParseString(out1, Config{})
	if err != nil {
		t.Fatal(err)
	}
	out2 := EncodeString(q2)
	if out1 != out2 {
		t.Fatalf("second serialization differs\nfirst:\n%s\nsecond:\n%s", out1, out2)
	}
}

func TestEncodeSectionOrder(t *testing.T) {
	out := EncodeString(parseSample(t))

	cat := strings.Index(out, "!Type:Cat")
	class := strings.Index(out, "!Type:Class")
	sec := strings.Index(out, "!Type:Security")
	acc := strings.Index(out, "!Account")
	if cat < 0 || class < 0 || sec < 0 || acc < 0 {
		t.Fatalf("missing sections:\n%s", out)
	}
	if !(cat < class && class < sec && sec < acc) {
		t.Errorf("sections out of order (cat=%d class=%d security=%d account=%d)", cat, class, sec, acc)
	}
	if !strings.HasSuffix(out, "^\n") {
		t.Error("output does not end with a record terminator")
	}
}

func TestEncodeCategoryHierarchy(t *testing.T) {
	out := EncodeString(parseSample(t))
	// parents come before children, children spelled with the full path.
	parent := strings.Index(out, "NBills\n")
	child := strings.Index(out, "NBills:Utilities\n")
	if parent < 0 || child < 0 {
		t.Fatalf("category records missing:\n%s", out)
	}
	if parent > child {
		t.Error("child category written before its parent")
	}
}

func TestEncodeClassSuffix(t *testing.T) {
	out := EncodeString(parseSample(t))
	if !strings.Contains(out, "LLeisure/Holiday\n") {
		t.Errorf("class suffix not re-emitted:\n%s", out)
	}
}

func TestEncodeTransfers(t *testing.T) {
	out := EncodeString(parseSample(t))
	if !strings.Contains(out, "L[Savings]\n") {
		t.Errorf("transfer bracket not re-emitted:\n%s", out)
	}
}

func TestEncodeSplitsRoundTrip(t *testing.T) {
	const in = `!Type:Bank
D2021-01-01
T-100.00
PShop
SBills:Utilities
EBulbs
$-25.00
SLeisure
$-75.00
^
`
	q1, err := ParseString(in, Config{})
	if err != nil {
		t.Fatal(err)
	}
	out := EncodeString(q1)
	q2, err := ParseString(out, Config{})
	if err != nil {
		t.Fatalf("re-parse failed: %v\noutput:\n%s", err, out)
	}
	if !q1.Equal(q2) {
		t.Fatalf("splits lost in round trip:\n%s", out)
	}
	if out != EncodeString(q2) {
		t.Error("split serialization not idempotent")
	}
}

func TestWriteFile(t *testing.T) {
	q1 := parseSample(t)
	path := filepath.Join(t.TempDir(), "out.qif")
	if err := WriteFile(path, q1); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != EncodeString(q1) {
		t.Error("file content differs from EncodeString")
	}
	q2, err := ParseFile(path, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if !q1.Equal(q2) {
		t.Error("file round trip lost data")
	}
}
