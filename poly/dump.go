package poly

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SweepDebug gates debugLog output. No engine code path calls debugLog, so
// setting it produces no trace output.
var SweepDebug = false

// SweepDebugOutput is where debug trace output goes.
var SweepDebugOutput io.Writer = os.Stdout

func debugLog(format string, args ...interface{}) {
	if SweepDebug {
		fmt.Fprintf(SweepDebugOutput, "[sweep] "+format+"\n", args...)
	}
}

// fatalf records a violated internal invariant: it writes a PostScript dump
// of the current polygon to a content-addressed file, prints the message
// to stderr, and panics with a fatalPanic that Process recovers into a
// returned *FatalError.
func (e *engine) fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, "poly: fatal:", msg)

	path := ""
	if e.currentPolygon != nil {
		if p, derr := dumpPolygon(e.currentPolygon, e.opts.DumpDir); derr == nil {
			path = p
		}
	}
	panic(fatalPanic{err: &FatalError{Message: msg, DumpPath: path}})
}

// dumpPolygon writes polygon p as PostScript to <md5 of all points>.ps
// under dir (the working directory if dir is empty), and returns the path.
func dumpPolygon(p *Polygon, dir string) (string, error) {
	name := fmt.Sprintf("%x.ps", polygonPointsMD5(p))
	path := name
	if dir != "" {
		path = filepath.Join(dir, name)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := writePostScript(f, p); err != nil {
		return "", err
	}
	return path, nil
}

func polygonPointsMD5(p *Polygon) [16]byte {
	h := md5.New()
	for _, st := range p.StrokeSlice() {
		for _, pt := range st.Points {
			fmt.Fprintf(h, "%d,%d;", pt.X, pt.Y)
		}
	}
	var sum [16]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// SaveDebugPostScript writes p in the debug PostScript format: one path per
// stroke, with an up-direction tint.
func SaveDebugPostScript(w io.Writer, p *Polygon) error {
	return writePostScript(w, p)
}

func writePostScript(w io.Writer, p *Polygon) error {
	if _, err := fmt.Fprintf(w, "%%%% gridsize %v\n%%%% begin\n", p.GridSize); err != nil {
		return err
	}
	for _, st := range p.StrokeSlice() {
		gray := 0.0
		if st.Dir == Up {
			gray = 0.7
		}
		if _, err := fmt.Fprintf(w, "%v setgray\n", gray); err != nil {
			return err
		}
		for i := 0; i+1 < len(st.Points); i++ {
			a, b := st.Points[i], st.Points[i+1]
			if _, err := fmt.Fprintf(w, "%d %d moveto\n%d %d lineto\nstroke\n", a.X, a.Y, b.X, b.Y); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "showpage")
	return err
}
