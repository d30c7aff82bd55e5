package main

import (
	"bufio"
	"io/ioutil"
	"log"
	"os"

	freqs "github.com/Sunday111/Freqs"
	"github.com/Sunday111/Freqs/alphabet"
	"github.com/Sunday111/Freqs/errors"
	"github.com/Sunday111/Freqs/report"
	arg "github.com/alexflint/go-arg"
)

// Exit statuses, one per failure class.
const (
	exitOK = iota
	exitArgs
	exitInputFile
	exitOutputFile
	exitFileFormat
)

func main() {
	log.SetPrefix("freqs: ")
	log.SetFlags(0)
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var args struct {
		Input  string `arg:"positional,required,help:file to count words in"`
		Output string `arg:"positional,required,help:file to write the report to"`
	}

	parser, err := arg.NewParser(arg.Config{Program: "freqs"}, &args)
	if err != nil {
		log.Print(err)
		return exitArgs
	}
	switch err := parser.Parse(argv); err {
	case nil:
	case arg.ErrHelp:
		parser.WriteHelp(os.Stdout)
		return exitOK
	default:
		log.Print(err)
		return exitArgs
	}

	in, err := os.Open(args.Input)
	if err != nil {
		log.Print(err)
		return exitInputFile
	}
	defer in.Close()

	// The output file is created before the input is read, so a failed run
	// can leave it empty but never stale.
	out, err := os.Create(args.Output)
	if err != nil {
		log.Print(err)
		return exitOutputFile
	}
	// writeReport does the error-checked close; this covers returns before it.
	defer out.Close()

	src, err := ioutil.ReadAll(in)
	if err != nil {
		log.Print(err)
		return exitInputFile
	}

	rep, err := freqs.Count(src, alphabet.Default())
	if err != nil {
		log.Print(err)
		return exitFileFormat
	}

	if err := writeReport(out, rep); err != nil {
		log.Print(err)
		return exitOutputFile
	}
	return exitOK
}

func writeReport(out *os.File, rep *report.Report) (err error) {
	defer errors.Defer(&err, out.Close)

	w := bufio.NewWriter(out)
	if _, err := rep.WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}
