/*
Package Replay parses and runs line oriented operation scripts against a Tables.Table with string keys and values.

Every line holds one command; blank lines and lines starting with # are skipped:

	put <key> <value...>
	get <key>
	remove <key>
	has <key>
	rehash <capacity>
	size
	capacity
	dump
	debug

put is silent, every other command writes its result. Missing values are written as <nil>.
*/
package Replay

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-tables/Tables"
	"github.com/pkg/errors"
)

type Kind byte

const (
	Put Kind = iota
	Get
	Remove
	Has
	Rehash
	Size
	Capacity
	Dump
	Debug
)

var names = [...]string{"put", "get", "remove", "has", "rehash", "size", "capacity", "dump", "debug"}

// arity is the number of arguments after the command name; put takes at least 2.
var arity = [...]int{2, 1, 1, 1, 1, 0, 0, 0, 0}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is one parsed command. Line is 1-based.
type Op struct {
	Kind     Kind
	Key, Val string
	N        int
	Line     int
}

func (o Op) String() string {
	switch o.Kind {
	case Put:
		return fmt.Sprintf("%s %s %s", o.Kind, o.Key, o.Val)
	case Get, Remove, Has:
		return fmt.Sprintf("%s %s", o.Kind, o.Key)
	case Rehash:
		return fmt.Sprintf("%s %d", o.Kind, o.N)
	default:
		return o.Kind.String()
	}
}

// SyntaxError reports a line that couldn't be parsed.
type SyntaxError struct {
	Line         int
	Text, Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func lookup(name string) (Kind, bool) {
	for i, n := range names {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Parse the script in r. Errors in the script are *SyntaxError, use errors.Cause or errors.As to get it.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(line, text)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return ops, nil
}

func parseLine(line int, text string) (Op, error) {
	fields := strings.Fields(text)
	k, ok := lookup(strings.ToLower(fields[0]))
	if !ok {
		return Op{}, &SyntaxError{line, text, "unknown command"}
	}
	args := fields[1:]
	if n := arity[k]; len(args) < n || (k != Put && len(args) > n) {
		return Op{}, &SyntaxError{line, text, fmt.Sprintf("%s takes %d arguments", k, n)}
	}
	op := Op{Kind: k, Line: line}
	switch k {
	case Put:
		op.Key, op.Val = args[0], strings.Join(args[1:], " ")
	case Get, Remove, Has:
		op.Key = args[0]
	case Rehash:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, &SyntaxError{line, text, "capacity isn't an integer"}
		}
		op.N = n
	}
	return op, nil
}

// Runner executes ops against a table.
type Runner struct {
	Out io.Writer
	//Log receives every op followed by the table's Debug dump when it's not nil.
	Log *log.Logger
}

func (r *Runner) Run(m Tables.Table[string, string], ops []Op) error {
	for _, op := range ops {
		if err := r.exec(m, op); err != nil {
			return errors.Wrapf(err, "line %d: %s", op.Line, op)
		}
		if r.Log != nil {
			r.Log.Printf("line %d: %s; size %d, capacity %d\n%s", op.Line, op, m.Size(), m.Capacity(), m.Debug())
		}
	}
	return nil
}

func (r *Runner) exec(m Tables.Table[string, string], op Op) (err error) {
	switch op.Kind {
	case Put:
		m.Put(op.Key, op.Val)
	case Get:
		err = r.value(m.Get(op.Key))
	case Remove:
		err = r.value(m.Remove(op.Key))
	case Has:
		_, err = fmt.Fprintln(r.Out, m.Has(op.Key))
	case Rehash:
		_, err = fmt.Fprintln(r.Out, m.Rehash(op.N))
	case Size:
		_, err = fmt.Fprintln(r.Out, m.Size())
	case Capacity:
		_, err = fmt.Fprintln(r.Out, m.Capacity())
	case Dump:
		_, err = fmt.Fprintln(r.Out, m.String())
	case Debug:
		_, err = fmt.Fprintln(r.Out, m.Debug())
	default:
		err = errors.Errorf("unknown op %s", op.Kind)
	}
	return
}

func (r *Runner) value(v string, ok bool) (err error) {
	if !ok {
		v = "<nil>"
	}
	_, err = fmt.Fprintln(r.Out, v)
	return
}
