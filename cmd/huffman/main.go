package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Maartz/huffman-encoding/internal/config"
	"github.com/Maartz/huffman-encoding/internal/fileio"
	"github.com/Maartz/huffman-encoding/pkg/huffman"
	"github.com/Maartz/huffman-encoding/pkg/logger"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] encode|decode <input> <output>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	cfg := config.Load()
	stats := flag.Bool("stats", false, "print compression statistics")
	maxBytes := flag.Int64("max", cfg.MaxInputBytes, "largest accepted input file in bytes")
	flag.Usage = usage
	flag.Parse()

	logg := logger.NewWithLevel(cfg.LogLevel)
	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), *maxBytes, *stats, logg); err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(mode, in, out string, maxBytes int64, stats bool, logg logger.Logger) error {
	if mode != "encode" && mode != "decode" {
		return fmt.Errorf("unexpected mode %q, expected \"encode\" or \"decode\"", mode)
	}
	data, err := fileio.ReadWhole(in, maxBytes)
	if err != nil {
		return err
	}
	switch mode {
	case "encode":
		enc, st, err := huffman.CompressWithStats(data)
		if err != nil {
			return fmt.Errorf("encode %s: %w", in, err)
		}
		if err := fileio.WriteOutput(out, enc); err != nil {
			return err
		}
		if stats {
			printStats(st)
		}
		logg.Debugf("encoded %s -> %s: %s", in, out, st)
	case "decode":
		dec, err := huffman.Decompress(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", in, err)
		}
		if err := fileio.WriteOutput(out, dec); err != nil {
			return err
		}
		if stats {
			fmt.Printf("in: %d bytes\nout: %d bytes\n", len(data), len(dec))
		}
		logg.Debugf("decoded %s -> %s: %dB -> %dB", in, out, len(data), len(dec))
	}
	return nil
}

func printStats(st huffman.Stats) {
	fmt.Printf("original:    %d bytes\n", st.InputBytes)
	fmt.Printf("compressed:  %d bytes\n", st.OutputBytes)
	fmt.Printf("ratio:       %.2f%%\n", st.Ratio()*100)
	fmt.Printf("symbols:     %d\n", st.DistinctSymbols)
	fmt.Printf("tree bits:   %d\n", st.TreeBits)
	fmt.Printf("payload bits %d\n", st.PayloadBits)
}
