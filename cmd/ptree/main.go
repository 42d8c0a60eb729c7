package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	ptree "github.com/reoring/ptree"
	"github.com/reoring/ptree/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "ptree CLI\n\nUsage:\n  ptree convert -in tree.json -out tree.yaml\n\nNotes:\n  - Formats follow the file extension (.json / .yaml / .yml).\n  - '-' reads stdin or writes stdout and is treated as JSON.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in string
	var out string
	fs.StringVar(&in, "in", "-", "input file ('-' for stdin)")
	fs.StringVar(&out, "out", "-", "output file ('-' for stdout)")
	_ = fs.Parse(args)

	data, err := readInput(in)
	if err != nil {
		fatalf("read %s: %v", in, err)
	}

	var f ptree.Form
	if isYAML(in) {
		f, err = codec.DecodeYAML(data)
	} else {
		f, err = codec.DecodeJSON(data)
	}
	if err != nil {
		fatalf("decode: %v", err)
	}

	var rendered []byte
	if isYAML(out) {
		rendered, err = codec.EncodeYAML(f)
	} else {
		rendered, err = codec.EncodeJSON(f)
	}
	if err != nil {
		fatalf("encode: %v", err)
	}
	if !isYAML(out) {
		rendered = append(rendered, '\n')
	}

	if err := writeOutput(out, rendered); err != nil {
		fatalf("write %s: %v", out, err)
	}
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
