package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/owo/archive"
	"github.com/arloliu/owo/compress"
	"github.com/arloliu/owo/container"
	"github.com/arloliu/owo/format"
)

var errUsage = errors.New("invalid arguments")

// out is where commands print their reports.
var out io.Writer = os.Stdout

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	ef := addEncoderFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: compress [flags] <in> <out>", errUsage)
	}

	opts, err := ef.options()
	if err != nil {
		return err
	}
	enc, err := container.NewEncoder(opts...)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	compressed, stats, err := enc.EncodeWithStats(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.Arg(1), compressed, 0o644); err != nil { //nolint:gosec
		return err
	}

	printStats(fs.Arg(0), stats)

	return nil
}

func runDecompress(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: decompress <in> <out>", errUsage)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	decoded, err := container.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return os.WriteFile(args[1], decoded, 0o644) //nolint:gosec
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: inspect <file>", errUsage)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	info, err := container.Inspect(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	printInfo(args[0], info)

	return nil
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	ef := addEncoderFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: bench [flags] <files...>", errUsage)
	}

	opts, err := ef.options()
	if err != nil {
		return err
	}

	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		results := make([]compress.CompressionStats, 0, len(compress.Supported()))
		for _, ct := range compress.Supported() {
			codec, err := benchCodec(ct, opts)
			if err != nil {
				return err
			}
			stats, err := compress.Measure(ct, codec, data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results = append(results, stats)
		}

		printBench(path, results)
	}

	return nil
}

func benchCodec(ct format.CompressionType, opts []container.EncoderOption) (compress.Codec, error) {
	if ct == format.CompressionOWO {
		return compress.NewOWOCompressor(opts...)
	}

	return compress.GetCodec(ct)
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	ef := addEncoderFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: pack [flags] <archive> <files...>", errUsage)
	}

	opts, err := ef.options()
	if err != nil {
		return err
	}

	files := fs.Args()[1:]
	entries := make([]archive.Entry, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, archive.Entry{Name: entryName(path), Data: data})
	}

	packed, err := archive.Build(context.Background(), entries, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.Arg(0), packed, 0o644); err != nil { //nolint:gosec
		return err
	}

	fmt.Fprintf(out, "packed %d files into %s (%d bytes)\n", len(entries), fs.Arg(0), len(packed))

	return nil
}

func runUnpack(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: unpack <archive> <dir>", errUsage)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	r, err := archive.Open(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	for e, err := range r.All() {
		if err != nil {
			return err
		}

		target, err := entryPath(args[1], e.Name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil { //nolint:gosec
			return err
		}
		if err := os.WriteFile(target, e.Data, 0o644); err != nil { //nolint:gosec
			return err
		}
		fmt.Fprintf(out, "%s (%d bytes)\n", target, len(e.Data))
	}

	return nil
}

// entryName turns a file path into a relative, slash separated entry name.
func entryName(path string) string {
	clean := filepath.Clean(path)
	clean = strings.TrimPrefix(clean, filepath.VolumeName(clean))

	return strings.TrimLeft(filepath.ToSlash(clean), "/")
}

// entryPath joins an entry name onto dir, rejecting names that escape it.
func entryPath(dir, name string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes the target directory", name)
	}

	return filepath.Join(dir, rel), nil
}
