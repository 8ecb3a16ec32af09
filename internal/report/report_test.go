package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/beamlab/internal/beam"
)

func solvedBeam(t *testing.T) (*beam.Beam, *beam.Result) {
	t.Helper()
	b, err := beam.New(10)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddPointLoad(100, 5); err != nil {
		t.Fatal(err)
	}
	if err := b.AddUDL(10, 2, 8); err != nil {
		t.Fatal(err)
	}
	res, err := b.Solve(501)
	if err != nil {
		t.Fatal(err)
	}
	return b, res
}

func TestWrite(t *testing.T) {
	b, res := solvedBeam(t)

	var buf bytes.Buffer
	if err := Write(&buf, b, res); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with PDF magic")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small report: %d bytes", buf.Len())
	}
}

func TestWriteFile(t *testing.T) {
	b, res := solvedBeam(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := WriteFile(path, b, res); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty report file")
	}
}

func TestThin(t *testing.T) {
	_, res := solvedBeam(t)

	thinned := thin(res.Profile, stationRows)
	if len(thinned) != stationRows {
		t.Fatalf("got %d rows, want %d", len(thinned), stationRows)
	}
	if thinned[0].X != 0 {
		t.Errorf("first row x = %g, want 0", thinned[0].X)
	}
	if got := thinned[len(thinned)-1].X; got != 10 {
		t.Errorf("last row x = %g, want 10", got)
	}

	short := beam.Profile{{X: 0}, {X: 1}}
	if got := thin(short, stationRows); len(got) != 2 {
		t.Errorf("short profile should pass through, got %d rows", len(got))
	}
}
