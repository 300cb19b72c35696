// Command reqline parses HTTP request lines, one per input line, and prints
// their components.
//
//	reqline [flags] [file...]
//
// With no files, standard input is read. The exit code is 1 if any line was
// rejected.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/indigo-web/reqline/http"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

// Logger is anything that can print, e.g. *log.Logger.
type Logger interface {
	Printf(format string, v ...any)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "reqline: ", 0)

	opts, files, err := loadOptions(args)
	if err != nil {
		logger.Printf("%s", err)
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 2
	}

	app := application{
		parser: http.NewParser(&opts.Parser),
		render: newRenderer(opts.Format, stdout),
		decode: opts.Decode,
		logger: logger,
	}

	if len(files) == 0 {
		err = app.process(stdin)
	} else {
		for _, name := range files {
			err = multierr.Append(err, app.processFile(name))
		}
	}

	if err != nil {
		return 1
	}

	return 0
}

type application struct {
	parser *http.Parser
	render renderer
	decode bool
	logger Logger
}

func (a application) processFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		a.logger.Printf("%s", err)
		return err
	}

	defer file.Close()

	if err = a.process(file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

// process handles every non-empty line of r. Each bad line is logged and the
// errors are returned combined, so a single bad line doesn't stop the rest.
func (a application) process(r io.Reader) (errs error) {
	scanner := bufio.NewScanner(r)
	// lines a bit longer than allowed must still reach the parser to be
	// reported as too long, instead of stopping the scanner
	scanner.Buffer(nil, max(bufio.MaxScanTokenSize, 2*a.parser.MaxLineLength()))

	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := a.processLine(lineno, line); err != nil {
			err = fmt.Errorf("line %d: %w", lineno, err)
			a.logger.Printf("%s", err)
			errs = multierr.Append(errs, err)
		}
	}

	if err := scanner.Err(); err != nil {
		a.logger.Printf("%s", err)
		errs = multierr.Append(errs, err)
	}

	return errs
}

func (a application) processLine(lineno int, line []byte) error {
	request, err := a.parser.Parse(line)
	if err != nil {
		return err
	}

	r, err := newReport(lineno, request, a.decode)
	if err != nil {
		return err
	}

	return a.render.Render(r)
}
