package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/leptjson/go-leptjson"
)

// Exit codes.
const (
	exitOK         = 0
	exitParseError = 1
	exitUsage      = 2
)

// CLI defines the command-line interface.
type CLI struct {
	File   string `arg:"" optional:"" default:"-" help:"Input file. Reads stdin when omitted or \"-\"."`
	Check  bool   `help:"Only validate the input; report the result through the exit code." short:"c"`
	Format string `help:"Output format." enum:"text,json" default:"text" short:"f"`
}

// result is the json output format.
type result struct {
	Type   string `json:"type,omitempty"`
	Number any    `json:"number,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("leptjson"),
		kong.Description("Parse a single null, true, false or number."),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.Errorf("%s", err)
		os.Exit(exitUsage)
	}

	os.Exit(run(&cli, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) int {
	data, err := readInput(cli.File, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "leptjson: %v\n", err)
		return exitUsage
	}

	var v leptjson.Value
	perr := leptjson.ParseBytes(&v, data)
	if cli.Check {
		if perr != nil {
			return exitParseError
		}
		return exitOK
	}

	if err := writeResult(stdout, cli.Format, &v, perr); err != nil {
		fmt.Fprintf(stderr, "leptjson: write output: %v\n", err)
		return exitUsage
	}
	if perr != nil {
		if cli.Format != "json" {
			fmt.Fprintln(stderr, perr)
		}
		return exitParseError
	}

	return exitOK
}

// readInput reads the whole of path, or of stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeResult prints the parsed value or the parse error in the chosen format.
func writeResult(w io.Writer, format string, v *leptjson.Value, perr error) error {
	if format == "json" {
		return writeJSON(w, v, perr)
	}

	if perr != nil {
		return nil
	}
	if v.Type() == leptjson.TypeNumber {
		_, err := fmt.Fprintf(w, "number %s\n", formatNumber(v.Number()))
		return err
	}
	_, err := fmt.Fprintln(w, v.Type())
	return err
}

func writeJSON(w io.Writer, v *leptjson.Value, perr error) error {
	var r result
	if perr != nil {
		r.Error = perr.Error()
		r.Code = leptjson.CodeOf(perr).String()
		var se *leptjson.SyntaxError
		if errors.As(perr, &se) && se.Offset >= 0 {
			r.Offset = &se.Offset
		}
	} else {
		r.Type = v.Type().String()
		if v.Type() == leptjson.TypeNumber {
			r.Number = jsonNumber(v.Number())
		}
	}

	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

// jsonNumber returns f in a form encoding/json accepts. Infinities have no
// JSON representation and are emitted as strings.
func jsonNumber(f float64) any {
	if math.IsInf(f, 0) {
		return formatNumber(f)
	}
	return json.Number(formatNumber(f))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
