package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// WriteFile is a test helper that writes data to a file named name inside a
// temporary directory removed at the end of the test, and returns the file
// path.
//
//	func TestFoo(t *testing.T) {
//	    path := testutil.WriteFile(t, "foo.gz", gzipped)
//
//	    // do something with path
//	    ...
//	}
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("can't write temp file: %v", err)
	}
	return path
}

// SetLogLevel sets the global log level for the execution of the current tb.
// Though setting the log level is safe for use from concurrent goroutines, it's
// not advised to use SetLogLevel in parallel tests/benchmark, i.e. using
// t.Parallel().
func SetLogLevel(tb testing.TB, level log.Level) {
	cur := log.GetLevel()
	log.SetLevel(level)
	tb.Cleanup(func() { log.SetLevel(cur) })
}

// LogHook sets the global log level to debug and records every entry logged
// by the standard logger until the end of tb. Not safe for parallel tests.
//
//	func TestFoo(t *testing.T) {
//	    hook := testutil.LogHook(t)
//	    Foo()
//	    entry := testutil.FindEntry(t, hook, "Foo")
//	    ...
//	}
func LogHook(tb testing.TB) *test.Hook {
	SetLogLevel(tb, log.DebugLevel)

	prev := log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	hook := test.NewGlobal()
	tb.Cleanup(func() { log.StandardLogger().ReplaceHooks(prev) })
	return hook
}

// FindEntry returns the last entry recorded by hook whose "f" field is f. It
// fails tb if there's none.
func FindEntry(tb testing.TB, hook *test.Hook, f string) *log.Entry {
	tb.Helper()

	entries := hook.AllEntries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Data["f"] == f {
			return entries[i]
		}
	}
	tb.Fatalf("no log entry with f=%q among %d entries", f, len(entries))
	return nil
}

// DiffBytes fails the test and shows where a and b first differ, if they do.
// aname and bname label a and b in the error message.
func DiffBytes(tb testing.TB, aname, bname string, a, b []byte) {
	tb.Helper()

	if bytes.Equal(a, b) {
		return
	}

	var buf bytes.Buffer
	if len(a) != len(b) {
		fmt.Fprintf(&buf, "\nlen(%s) = %d, len(%s) = %d", aname, len(a), bname, len(b))
	}

	line, offs := 1, 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			fmt.Fprintf(&buf, "\nfirst difference at byte %d (line %d):", i, line)
			fmt.Fprintf(&buf, "\n%s: %q", aname, lineAt(a, offs))
			fmt.Fprintf(&buf, "\n%s: %q", bname, lineAt(b, offs))
			break
		}
		if a[i] == '\n' {
			line++
			offs = i + 1
		}
	}
	tb.Error(buf.String())
}

// lineAt returns the line in text starting at offset offs.
func lineAt(text []byte, offs int) []byte {
	i := bytes.IndexByte(text[offs:], '\n')
	if i < 0 {
		return text[offs:]
	}
	return text[offs : offs+i]
}
