// Package trace parses operation scripts and replays them against an LRU
// cache.
//
// A script holds one operation per line:
//
//	put <key> <value>
//	get <key>
//	del <key>
//
// Text from '#' to the end of a line is a comment and blank lines are
// ignored. Verbs are case-insensitive; keys and values are whitespace-free
// tokens.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("trace: syntax error")

// Kind is the verb of an operation.
type Kind int

const (
	Get Kind = iota + 1
	Put
	Del
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Put:
		return "put"
	case Del:
		return "del"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is one parsed line of a script.
type Op struct {
	Kind  Kind
	Key   string
	Value string // Put only
	Line  int
}

func (o Op) String() string {
	if o.Kind == Put {
		return fmt.Sprintf("put %s %s", o.Key, o.Value)
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Key)
}

// NewReader decodes r from the named encoding (WHATWG names such as
// "utf-8", "utf-16le", "windows-1252") into UTF-8. A leading byte order mark
// overrides the configured encoding.
func NewReader(r io.Reader, encoding string) (io.Reader, error) {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("trace: encoding %q: %w", encoding, err)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// Parse reads a whole script.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		op, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trace: read: %w", err)
	}
	return ops, nil
}

func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)
	verb := strings.ToLower(fields[0])

	var op Op
	want := 2
	switch verb {
	case "get":
		op.Kind = Get
	case "del", "delete", "remove":
		op.Kind = Del
	case "put", "set":
		op.Kind = Put
		want = 3
	default:
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
	if len(fields) != want {
		return Op{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, verb, want-1, len(fields)-1)
	}
	op.Key = fields[1]
	if op.Kind == Put {
		op.Value = fields[2]
	}
	return op, nil
}
