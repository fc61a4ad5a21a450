package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/shaderkit/smolv"
	"github.com/shaderkit/smolv/spirv"
	"github.com/shaderkit/smolv/stats"
)

func main() {
	var (
		outFile     = flag.String("o", "", "Output path for the decoded module")
		info        = flag.Bool("info", false, "Print header information and exit")
		listing     = flag.Bool("list", false, "Print an instruction listing of the decoded module")
		showStats   = flag.Bool("stats", false, "Print per-opcode statistics of the decoded module")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: smolv [-o out.spv] <file.smv>")
		fmt.Fprintln(os.Stderr, "       smolv -info <file.smv>")
		fmt.Fprintln(os.Stderr, "       smolv -list <file.smv>")
		fmt.Fprintln(os.Stderr, "       smolv -stats <file.smv>")
		fmt.Fprintln(os.Stderr, "       smolv -i <file.smv>  (interactive mode)")
		os.Exit(1)
	}
	inFile := flag.Arg(0)

	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			smolv.SetLogger(l)
			stats.SetLogger(l)
		}
	}

	if *interactive {
		if err := runInteractive(inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(inFile, *outFile, *info, *listing, *showStats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, info, listing, showStats bool) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	h, err := smolv.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("parse header: %w", err)
	}

	if info {
		printInfo(inFile, len(data), h)
		return nil
	}

	module, err := smolv.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if listing {
		return spirv.WriteListing(os.Stdout, module)
	}

	if showStats {
		r, err := stats.Calculate(module)
		if err != nil {
			return fmt.Errorf("calculate stats: %w", err)
		}
		if err := r.WriteText(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("\n%s\n", stats.CompareSizes(module, data))
		return nil
	}

	if outFile == "" {
		outFile = defaultOutput(inFile)
	}
	if err := os.WriteFile(outFile, module, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Printf("%s (%d bytes) -> %s (%d bytes)\n", inFile, len(data), outFile, len(module))
	return nil
}

func printInfo(path string, encodedSize int, h smolv.Header) {
	fmt.Printf("File:         %s\n", path)
	fmt.Printf("SPIR-V:       %d.%d\n", h.Version>>16, (h.Version>>8)&0xFF)
	fmt.Printf("Generator:    0x%08x\n", h.Generator)
	fmt.Printf("Bound:        %d\n", h.Bound)
	fmt.Printf("Schema:       %d\n", h.Schema)
	fmt.Printf("Encoded:      %d bytes\n", encodedSize)
	fmt.Printf("Decoded:      %d bytes\n", h.DecodedSize)
	if h.DecodedSize > 0 {
		fmt.Printf("Ratio:        %.1f%%\n", float64(encodedSize)*100/float64(h.DecodedSize))
	}
}

// defaultOutput derives an output path next to the input:
// shader.smolv becomes shader_unpacked.smolv.
func defaultOutput(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_unpacked" + ext
}
