// Command tablectl replays an operation script against a ProbeTable or a ChainTable and prints the results.
//
//	tablectl [-kind open|chain] [-capacity N] [-hash poly|xx|seeded] [-v] [script]
//
// The script is read from stdin when no file is given. See package Replay for its format.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	Go_Tables "github.com/g-m-twostay/go-tables"
	"github.com/g-m-twostay/go-tables/Replay"
	"github.com/g-m-twostay/go-tables/Tables"
	"github.com/g-m-twostay/go-tables/Tables/ChainTable"
	"github.com/g-m-twostay/go-tables/Tables/ProbeTable"
	"github.com/pkg/errors"
)

type config struct {
	kind, hash string
	capacity   int
	verbose    bool
	script     string
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("tablectl", flag.ContinueOnError)
	fs.StringVar(&c.kind, "kind", "open", "table kind: open (linear probing) or chain (separate chaining)")
	fs.IntVar(&c.capacity, "capacity", 8, "initial capacity, at least 1")
	fs.StringVar(&c.hash, "hash", "poly", "key hash: poly, xx, or seeded")
	fs.BoolVar(&c.verbose, "v", false, "log every operation and the storage after it")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.capacity < 1 {
		return c, errors.Errorf("capacity %d is less than 1", c.capacity)
	}
	if fs.NArg() > 1 {
		return c, errors.New("at most one script file")
	}
	c.script = fs.Arg(0)
	return c, nil
}

func hashFunc(name string) (func(string) int, error) {
	switch name {
	case "poly":
		return Go_Tables.HashPoly, nil
	case "xx":
		return Go_Tables.HashXX, nil
	case "seeded":
		return Go_Tables.MakeHasher().HashString, nil
	}
	return nil, errors.Errorf("unknown hash %q", name)
}

func newTable(c config) (Tables.Table[string, string], error) {
	hashF, err := hashFunc(c.hash)
	if err != nil {
		return nil, err
	}
	switch c.kind {
	case "open":
		return ProbeTable.NewFunc[string, string](c.capacity, hashF), nil
	case "chain":
		return ChainTable.NewFunc[string, string](c.capacity, hashF), nil
	}
	return nil, errors.Errorf("unknown table kind %q", c.kind)
}

func run(c config, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	m, err := newTable(c)
	if err != nil {
		return err
	}
	in := stdin
	if c.script != "" {
		f, err := os.Open(c.script)
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		in = f
	}
	ops, err := Replay.Parse(in)
	if err != nil {
		return err
	}
	r := Replay.Runner{Out: stdout}
	if c.verbose {
		r.Log = logger
	}
	logger.Printf("replaying %d ops on a %s table of capacity %d", len(ops), c.kind, c.capacity)
	if err = r.Run(m, ops); err != nil {
		return err
	}
	logger.Printf("done: size %d, capacity %d, load %.2f", m.Size(), m.Capacity(), float64(m.Size())/float64(m.Capacity()))
	return nil
}

func main() {
	log.SetFlags(log.Lshortfile)
	log.SetPrefix("tablectl: ")
	c, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
	if err = run(c, os.Stdin, os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}
