// Command owo compresses files with the owo container format and compares it
// against other codecs.
//
// Usage:
//
//	owo compress [flags] <in> <out>
//	owo decompress <in> <out>
//	owo inspect <file>
//	owo bench [flags] <files...>
//	owo pack [flags] <archive> <files...>
//	owo unpack <archive> <dir>
package main

import (
	"fmt"
	"log"
	"os"
)

type command struct {
	name    string
	summary string
	run     func(args []string) error
}

func commands() []command {
	return []command{
		{"compress", "compress a file into an owo container", runCompress},
		{"decompress", "restore a file from an owo container", runDecompress},
		{"inspect", "print the header and payload layout of a container", runInspect},
		{"bench", "compare owo with the other codecs on files", runBench},
		{"pack", "bundle files into an owo archive", runPack},
		{"unpack", "extract every entry of an owo archive", runUnpack},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("owo: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	name := os.Args[1]
	for _, c := range commands() {
		if c.name == name {
			if err := c.run(os.Args[2:]); err != nil {
				log.Fatal(err)
			}

			return
		}
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: owo <command> [arguments]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, c := range commands() {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", c.name, c.summary)
	}
}
