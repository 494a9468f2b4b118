package main

import (
	"fmt"
	"strings"

	"github.com/arloliu/owo/compress"
	"github.com/arloliu/owo/container"
	"github.com/arloliu/owo/format"
)

func printStats(name string, s container.Stats) {
	fmt.Fprintf(out, "%s: %d -> %d bytes (%s, %s, %.2f%%)\n",
		name, s.InputSize, s.OutputSize, s.Version, s.Mode, s.Ratio()*100)
	fmt.Fprintf(out, "  raw:          %d\n", s.RawSize)
	fmt.Fprintf(out, "  entropy only: %s\n", candidateSize(s.EntropyOnlySize))
	fmt.Fprintf(out, "  dictionary:   %s (%d tokens)\n", candidateSize(s.DictionarySize), s.Tokens)
	fmt.Fprintf(out, "  transform:    %s\n", candidateSize(s.TransformSize))
}

func candidateSize(n int) string {
	if n == 0 {
		return "-"
	}

	return fmt.Sprintf("%d", n)
}

func printInfo(name string, info container.Info) {
	fmt.Fprintf(out, "%s\n", name)
	fmt.Fprintf(out, "  format:     %s\n", info.Version)
	fmt.Fprintf(out, "  mode:       %s\n", info.Mode)
	fmt.Fprintf(out, "  size:       %d bytes\n", info.Size)
	if info.Mode == format.ModeRaw {
		fmt.Fprintf(out, "  raw length: %d bytes\n", info.RawLength)
		return
	}
	fmt.Fprintf(out, "  codebook:   %d entries\n", info.CodebookEntries)
	fmt.Fprintf(out, "  bitstream:  %d bits\n", info.BitLength)
	if len(info.Transforms) > 0 {
		stages := make([]string, len(info.Transforms))
		for i, t := range info.Transforms {
			stages[i] = t.String()
		}
		fmt.Fprintf(out, "  transforms: %s\n", strings.Join(stages, " -> "))
	}
}

func printBench(name string, results []compress.CompressionStats) {
	fmt.Fprintf(out, "=== %s ===\n", name)
	fmt.Fprintf(out, "%-8s | %-12s | %-12s | %-8s | %-12s | %-12s\n",
		"Codec", "Original", "Compressed", "Ratio", "Compress", "Decompress")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, r := range results {
		fmt.Fprintf(out, "%-8s | %-12d | %-12d | %-8s | %-12s | %-12s\n",
			r.Algorithm,
			r.OriginalSize,
			r.CompressedSize,
			fmt.Sprintf("%.2f%%", r.CompressionRatio()*100),
			formatNs(r.CompressionTimeNs),
			formatNs(r.DecompressionTimeNs))
	}
	fmt.Fprintln(out)
}

func formatNs(ns int64) string {
	switch {
	case ns >= 1_000_000:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	case ns >= 1_000:
		return fmt.Sprintf("%.2fµs", float64(ns)/1e3)
	default:
		return fmt.Sprintf("%dns", ns)
	}
}
