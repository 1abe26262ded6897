package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/zephyrtronium/eqtree"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run evaluates expressions and returns the exit status: 0 if every
// expression evaluated, 1 if any failed to parse, 2 for usage or I/O errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	var (
		inname, verb            string
		nl, echo, dump, pausing bool
	)
	flags := flag.NewFlagSet("eqtree", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flags.StringVar(&verb, "fmt", "%g", "result formatting string")
	flags.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flags.BoolVar(&echo, "echo", false, "print parse trees")
	flags.BoolVar(&dump, "dump", false, "dump parse tree structures")
	flags.BoolVar(&pausing, "pause", false, "wait for a key press before exiting")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	tty, interactive := terminal(stdin)
	var srcs []string
	if inname != "" || flags.NArg() == 0 {
		in, err := infile(inname, stdin)
		if err != nil {
			logger.Print(err)
			return 2
		}
		if in == stdin && interactive {
			fmt.Fprintln(stdout, "Enter expression:")
		}
		lines, err := readlines(in, nl)
		if cerr := closein(in, stdin); err == nil {
			err = cerr
		}
		if err != nil {
			logger.Print(err)
			return 2
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, flags.Args()...)

	status := 0
	verb += "\n"
	for _, src := range srcs {
		a, err := eqtree.Parse(src)
		if err != nil {
			logger.Printf("%s: %v", src, err)
			status = 1
			continue
		}
		if echo {
			fmt.Fprintf(stdout, "%v : ", a)
		}
		if dump {
			spew.Fdump(stdout, a)
		}
		fmt.Fprintf(stdout, verb, a.Eval())
	}

	if pausing && interactive {
		pause(tty, stdout)
	}
	return status
}

// terminal returns stdin as a file and whether it is an interactive terminal.
func terminal(stdin io.Reader) (*os.File, bool) {
	f, ok := stdin.(*os.File)
	if !ok {
		return nil, false
	}
	return f, term.IsTerminal(int(f.Fd()))
}

func infile(inname string, stdin io.Reader) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return stdin, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

// closein closes in if it was opened from a file rather than being stdin.
func closein(in, stdin io.Reader) error {
	c, ok := in.(io.Closer)
	if !ok || in == stdin {
		return nil
	}
	return errors.Wrap(c.Close(), "closing input")
}

// readlines reads expressions from in, one per line with line terminators
// removed. Unless all is set, only the first line is used, and a missing line
// is an empty expression. Blank lines are skipped when reading all lines.
func readlines(in io.Reader, all bool) ([]string, error) {
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSuffix(scan.Text(), "\r")
		if !all {
			return []string{line}, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if !all {
		return []string{""}, nil
	}
	return lines, nil
}

// pause waits for a single key press on the terminal.
func pause(tty *os.File, stdout io.Writer) {
	fmt.Fprint(stdout, "Press any key to exit...")
	fd := int(tty.Fd())
	if old, err := term.MakeRaw(fd); err == nil {
		defer term.Restore(fd, old)
	}
	var b [1]byte
	tty.Read(b[:])
	fmt.Fprintln(stdout)
}
