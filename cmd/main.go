package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/analysissrv"
	"github.com/Abraxas-365/sift/internal/render"
	"github.com/Abraxas-365/sift/pkg/logx"
)

func main() {
	output := pflag.StringP("output", "o", "output", "Directory to save analysis results")
	format := pflag.StringP("format", "f", "text", "Output format: text, json or html")
	workers := pflag.Int("workers", 4, "Concurrent analyses in directory mode")
	vocabularyPath := pflag.String("vocabulary", "", "YAML vocabulary override file")
	verbose := pflag.BoolP("verbose", "v", false, "Enable verbose output")
	serve := pflag.Bool("serve", false, "Run the HTTP API server instead of analyzing files")
	port := pflag.String("port", "", "HTTP port in serve mode (default $PORT or 8080)")
	pflag.Parse()

	if *verbose {
		logx.SetLevel(logx.LevelDebug)
	} else {
		logx.SetLevel(logx.LevelInfo)
	}

	container := NewContainer(*vocabularyPath)

	if *serve {
		runServer(container, servePort(*port))
		return
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sift <resume-path> [flags]")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	renderer, err := render.For(*format)
	if err != nil {
		logx.Fatalf("%v", err)
	}
	if err := os.MkdirAll(*output, 0o755); err != nil {
		logx.Fatalf("Failed to create output directory %s: %v", *output, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		logx.Fatalf("Cannot access %s: %v", path, err)
	}

	ctx := context.Background()
	if info.IsDir() {
		n := analyzeDirectory(ctx, container, path, *output, renderer, *workers)
		fmt.Printf("Analyzed %d resumes. Results saved to %s\n", n, *output)
	} else {
		if err := analyzeFile(ctx, container, path, *output, renderer); err != nil {
			logx.Fatalf("Analysis failed: %v", err)
		}
	}
	fmt.Println("Resume analysis complete.")
}

func servePort(flagPort string) string {
	if flagPort != "" {
		return flagPort
	}
	if env := os.Getenv("PORT"); env != "" {
		return env
	}
	return "8080"
}

// analyzeFile runs the pipeline over a single resume file and writes the
// rendered report next to its siblings in the output directory
func analyzeFile(ctx context.Context, container *Container, path, outputDir string, renderer analysis.Renderer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return analysis.ErrFileNotFound().WithDetail("path", path)
		}
		return analysis.ErrRegistry.NewWithCause(analysis.CodeFileReadFailed, err).WithDetail("path", path)
	}

	result, err := container.Service.AnalyzeDocument(ctx, data, filepath.Base(path))
	if err != nil {
		return err
	}
	return writeReport(renderer, outputDir, filepath.Base(path), result)
}

// analyzeDirectory decodes every supported file in the directory and fans the
// analyses out over the service's worker pool. Returns the number of resumes
// analyzed; per-file failures are logged and skipped.
func analyzeDirectory(ctx context.Context, container *Container, dir, outputDir string, renderer analysis.Renderer, workers int) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logx.Fatalf("Cannot read directory %s: %v", dir, err)
	}

	var reqs []analysis.AnalyzeTextRequest
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !container.Extractor.Supports(name) {
			logx.Debugf("Skipping unsupported file: %s", name)
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logx.Warnf("Skipping %s: %v", name, err)
			continue
		}
		text, err := container.Extractor.Extract(ctx, data, name)
		if err != nil {
			logx.Warnf("Skipping %s: %v", name, err)
			continue
		}
		reqs = append(reqs, analysis.AnalyzeTextRequest{Text: text, Filename: name})
	}

	analyzed := 0
	for _, item := range container.Service.AnalyzeBatch(ctx, reqs, workers) {
		if item.Err != nil {
			logx.Warnf("Analysis of %s failed: %v", item.Filename, item.Err)
			continue
		}
		if err := writeReport(renderer, outputDir, item.Filename, item.Result); err != nil {
			logx.Warnf("Writing report for %s failed: %v", item.Filename, err)
			continue
		}
		analyzed++
	}
	return analyzed
}

func writeReport(renderer analysis.Renderer, outputDir, filename string, result *analysissrv.Result) error {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	outPath := filepath.Join(outputDir, stem+"."+renderer.Extension())

	f, err := os.Create(outPath)
	if err != nil {
		return analysis.ErrRegistry.NewWithCause(analysis.CodeFileReadFailed, err).WithDetail("path", outPath)
	}
	defer f.Close()

	if err := renderer.Render(f, result.Profile, result.ATS); err != nil {
		return analysis.ErrRegistry.NewWithCause(analysis.CodeRenderFailed, err).WithDetail("path", outPath)
	}

	logx.Infof("Report written to %s", outPath)
	return nil
}
