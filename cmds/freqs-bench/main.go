package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	freqs "github.com/Sunday111/Freqs"
	"github.com/Sunday111/Freqs/alphabet"
	"github.com/Sunday111/Freqs/report"
	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
)

func main() {
	args := struct {
		File    string `arg:"positional,required"`
		Repeat  uint64 `arg:"help:count the same file repeatedly (for performance)"`
		Top     int    `arg:"help:print the N most frequent words"`
		Time    bool   `arg:"help:print the count duration"`
		Profile string `arg:"help:filename to write cpu profile"`
	}{
		Repeat: 1,
		Top:    10,
		Time:   true,
	}
	arg.MustParse(&args)

	if args.Repeat == 0 {
		log.Fatalln("repeat must be at least 1")
	}

	if args.Profile != "" {
		if !strings.HasSuffix(args.Profile, ".prof") {
			args.Profile = args.Profile + ".prof"
		}

		f, err := os.Create(args.Profile)
		if err != nil {
			log.Fatalln(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	src, err := ioutil.ReadFile(args.File)
	if err != nil {
		log.Fatalln(err)
	}

	table := alphabet.Default()

	var times []float64
	var rep *report.Report

	for i := uint64(0); i < args.Repeat; i++ {
		begin := time.Now()
		rep, err = freqs.Count(src, table)
		if err != nil {
			log.Fatalln(err)
		}
		times = append(times, float64(time.Since(begin)))
	}

	median, _ := stats.Median(times)
	throughput := float64(len(src)) / (median / float64(time.Second))
	fmt.Printf("%s: %s bytes, %s code points, %s words, %s distinct, %s/s\n",
		filepath.Base(args.File),
		humanize.Comma(int64(len(src))),
		humanize.Comma(int64(rep.CodePoints())),
		humanize.Comma(int64(rep.Total())),
		humanize.Comma(int64(rep.Distinct())),
		humanize.Bytes(uint64(throughput)))

	if args.Top > 0 {
		entries := rep.Entries()
		if len(entries) > args.Top {
			entries = entries[:args.Top]
		}
		for _, e := range entries {
			fmt.Printf("%8d %s\n", e.Count, rep.Render(e))
		}
	}

	if args.Time {
		fmt.Printf("Count time:\n")
		f, _ := stats.Median(times)
		fmt.Printf("  Median: %v\n", time.Duration(f))
		f, _ = stats.Mean(times)
		fmt.Printf("  Mean: %v\n", time.Duration(f))
		f, _ = stats.StdDevS(times)
		fmt.Printf("  StdDev: %v\n", time.Duration(f))
		f, _ = stats.Min(times)
		fmt.Printf("  Min: %v\n", time.Duration(f))
		f, _ = stats.Max(times)
		fmt.Printf("  Max: %v\n", time.Duration(f))
	}
}
