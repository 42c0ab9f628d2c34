// Command radixart is the benchmarking collaborator described alongside the
// tree package: it loads a newline-delimited word list, inserts each word
// with a derived value, times a lookup pass and a delete pass over the same
// list, and reports the tree's live node-allocation byte count.
//
// Its only contract with the core is the handful of public operations on
// [art.Tree]; it does not reach into the tree or node packages directly.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dolthub/maphash"

	"github.com/mlev-art/radixart/internal/xflag"
	"github.com/mlev-art/radixart/pkg/arena/art"
	"github.com/mlev-art/radixart/pkg/arena/art/node"
	"github.com/mlev-art/radixart/pkg/xerrors"
)

var prefix = xflag.Func("prefix", "print every key with this prefix after loading", func(s string) (string, error) {
	return s, nil
})

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: radixart <wordlist-file>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		if fe, ok := xerrors.AsA[*fileError](err); ok && errors.Is(fe.err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "radixart: no such word list: %s\n", fe.path)
		} else {
			fmt.Fprintf(os.Stderr, "radixart: %v\n", err)
		}
		os.Exit(1)
	}
}

// fileError ties a failure to open or read the word list to its path. Both
// an open failure and an overlong line are wrapped in it; main inspects the
// wrapped cause to report a missing file separately from other failures.
type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string { return fmt.Sprintf("%s: %v", e.path, e.err) }
func (e *fileError) Unwrap() error { return e.err }

func run(path string) error {
	words, err := loadWords(path)
	if err != nil {
		return err
	}

	tr := art.New()
	hasher := maphash.NewHasher[string]()

	start := time.Now()
	for _, w := range words {
		tr.Insert([]byte(w), deriveValue(hasher, w))
	}
	fmt.Printf("Inserted %d words in %v.\n", len(words), time.Since(start))
	fmt.Printf("Total: %d bytes.\n", tr.Bytes())

	if p := *prefix; p != "" {
		tr.VisitPrefix([]byte(p), func(key []byte, v node.Value) bool {
			fmt.Printf("key: %s value: %d\n", key, v)
			return true
		})
	}

	start = time.Now()
	var found int
	for _, w := range words {
		if _, ok := tr.Search([]byte(w)); ok {
			found++
		}
	}
	fmt.Printf("Retrieved %d/%d words in %v.\n", found, len(words), time.Since(start))

	start = time.Now()
	var removed int
	for _, w := range words {
		if _, ok := tr.Delete([]byte(w)); ok {
			removed++
		}
	}
	fmt.Printf("Deleted %d words in %v.\n", removed, time.Since(start))
	fmt.Printf("Total: %d bytes.\n", tr.Bytes())

	return nil
}

// deriveValue turns a word into a value for the tree to store under it. The
// zero value means "absent" throughout the core, so a word that happens to
// hash to zero is nudged to the next value instead of being dropped.
func deriveValue(hasher maphash.Hasher[string], word string) node.Value {
	v := node.Value(hasher.Hash(word))
	if v == 0 {
		v = 1
	}
	return v
}

// loadWords reads newline-delimited words from path, skipping blank lines
// (the core rejects zero-length keys anyway, so there is nothing useful to
// report about an empty line).
func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fileError{path: path, err: err}
	}
	defer f.Close()

	var words []string
	r := bufio.NewScanner(f)
	r.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for r.Scan() {
		line := r.Text()
		if line == "" {
			continue
		}
		if len(line) > 255 {
			return nil, &fileError{path: path, err: fmt.Errorf("line too long for a key (%d bytes): %q", len(line), line[:32]+"...")}
		}
		words = append(words, line)
	}
	if err := r.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, &fileError{path: path, err: err}
	}
	return words, nil
}
