// Command wgslc is the WGSL-to-Metal shader translator CLI.
//
// Usage:
//
//	wgslc [options] <input.wgsl>
//
// Examples:
//
//	wgslc shader.wgsl                    # Translate to stdout
//	wgslc -o shader.metal shader.wgsl    # Translate to a file
//	wgslc -manifest build.hcl            # Translate every shader in a manifest
//
// Manifest mode resolves source and output paths relative to the manifest
// file's directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/wgslc"
	"github.com/gogpu/wgslc/manifest"
)

var (
	output       = flag.String("o", "", "output file (default: stdout)")
	manifestPath = flag.String("manifest", "", "compile all shaders listed in an HCL manifest")
	noValidate   = flag.Bool("no-validate", false, "skip semantic validation")
	printEntry   = flag.Bool("print-entry-points", false, "report entry point names to stderr")
	verbose      = flag.Bool("v", false, "enable debug logging")
	version      = flag.Bool("version", false, "print version")
)

const wgslcVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("wgslc version %s\n", wgslcVersion)
		return
	}

	if *verbose {
		wgslc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := wgslc.CompileOptions{
		Validate: !*noValidate,
	}

	if *manifestPath != "" {
		if len(flag.Args()) > 0 {
			fmt.Fprintln(os.Stderr, "Error: -manifest and an input file are mutually exclusive")
			os.Exit(1)
		}
		if err := runManifest(*manifestPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	// Read input file
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	// Translate WGSL to MSL
	msl, entryPoints, err := wgslc.CompileWithOptions(string(source), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(1)
	}

	// Write output
	if *output != "" {
		err = os.WriteFile(*output, []byte(msl), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", inputPath, *output, len(msl))
	} else {
		fmt.Print(msl)
	}

	if *printEntry {
		fmt.Fprintf(os.Stderr, "entry points: vertex=%q fragment=%q\n", entryPoints.Vertex, entryPoints.Fragment)
	}
}

// runManifest compiles every shader block in the manifest at path. Source
// and output paths are resolved relative to the manifest's directory.
func runManifest(path string, opts wgslc.CompileOptions) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	for _, shader := range m.Shaders {
		source, err := os.ReadFile(filepath.Join(dir, shader.Source))
		if err != nil {
			return fmt.Errorf("shader %q: %w", shader.Name, err)
		}
		msl, _, err := wgslc.CompileWithOptions(string(source), opts)
		if err != nil {
			return fmt.Errorf("shader %q: %w", shader.Name, err)
		}
		outPath := filepath.Join(dir, shader.Output)
		if err := os.WriteFile(outPath, []byte(msl), 0644); err != nil {
			return fmt.Errorf("shader %q: %w", shader.Name, err)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", shader.Source, shader.Output, len(msl))
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: wgslc [options] <input.wgsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  wgslc shader.wgsl                 Translate to stdout\n")
	fmt.Fprintf(os.Stderr, "  wgslc -o shader.metal shader.wgsl Translate to a file\n")
	fmt.Fprintf(os.Stderr, "  wgslc -manifest build.hcl         Translate every shader in a manifest\n")
}
