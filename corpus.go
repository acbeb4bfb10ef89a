package skipgram

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineBytes = 1 << 20

// ReadCorpus reads one word set per non-blank line. Text is lowercased and
// split on whitespace.
func ReadCorpus(r io.Reader) ([][]string, error) {
	var sets [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		words := strings.Fields(strings.ToLower(sc.Text()))
		if len(words) == 0 {
			continue
		}
		sets = append(sets, words)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}
	return sets, nil
}
