// Package pipeline drives the batch: discover Java files, ask the model
// for a test class per file, sanitize the response, and write it out.
// Processing is strictly sequential with one blocking remote call per
// file and a fixed inter-call delay.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"testsmith/internal/compiler"
	"testsmith/internal/crawler"
	"testsmith/internal/extractor"
	"testsmith/internal/generator"
	"testsmith/internal/javatext"
)

// Generator is the remote text-generation boundary.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options configures one batch run. The caller supplies everything
// explicitly; the pipeline holds no process-wide defaults.
type Options struct {
	SourceDir     string
	OutDir        string
	Layout        string // "mirror" (default) or "package"
	Delay         time.Duration
	SkipGlobs     []string
	ScaffoldMocks bool
	CompileCheck  bool
	JavacPath     string
}

// Pipeline processes one source file at a time.
type Pipeline struct {
	gen     Generator
	ext     *extractor.Extractor // nil disables prompt enrichment
	prompts *generator.PromptBuilder
	checker *compiler.Checker // nil disables the javac pass
	limiter *rate.Limiter
	opts    Options
}

// New builds a pipeline. ext may be nil; grammar-based extraction is an
// enrichment, never a gate.
func New(gen Generator, ext *extractor.Extractor, opts Options) *Pipeline {
	if opts.Layout == "" {
		opts.Layout = "mirror"
	}
	p := &Pipeline{
		gen:     gen,
		ext:     ext,
		prompts: &generator.PromptBuilder{},
		limiter: rate.NewLimiter(rate.Every(opts.Delay), 1),
		opts:    opts,
	}
	if opts.CompileCheck {
		javac := opts.JavacPath
		if javac == "" {
			javac = "javac"
		}
		p.checker = compiler.NewChecker(javac)
	}
	return p
}

// Run walks the source directory and processes every candidate file,
// aggregating per-file outcomes. Only a failed walk returns an error;
// per-file failures land in the report.
func (p *Pipeline) Run(ctx context.Context) (*BatchReport, error) {
	report := &BatchReport{}
	cr := crawler.NewCrawler(p.opts.SkipGlobs)

	err := cr.ScanProject(p.opts.SourceDir, func(unit *crawler.SourceUnit) {
		fmt.Printf("⚙️  %s\n", unit.RelPath)
		out, err := p.processUnit(ctx, unit)
		if err != nil {
			log.Printf("⚠️  %s: %v", unit.RelPath, err)
		} else {
			fmt.Printf("✅ %s\n", out)
		}
		report.add(FileResult{Source: unit.Path, Output: out, Err: err})
	})
	if err != nil {
		return report, fmt.Errorf("scan failed: %w", err)
	}
	return report, nil
}

func (p *Pipeline) processUnit(ctx context.Context, unit *crawler.SourceUnit) (string, error) {
	decl := javatext.Extract(unit.Content)
	if decl.Name == "" {
		return "", fmt.Errorf("no type declaration found")
	}

	var units []*extractor.CodeUnit
	if p.ext != nil {
		// Best-effort: a parse failure only costs prompt enrichment.
		units, _ = p.ext.ExtractFromSource([]byte(unit.Content), unit.Path)
	}

	prompt := p.prompts.BuildTestPrompt(decl, unit.Content, units)

	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	code := generator.CleanCodeFences(raw)
	if v := javatext.Validate(code); !v.OK {
		code = javatext.Repair(code)
		if v = javatext.Validate(code); !v.OK {
			return "", fmt.Errorf("unrepairable output: %s", v.Reason)
		}
	}

	if p.opts.ScaffoldMocks {
		code = javatext.Scaffold(code, unit.Content, decl.Name)
	}

	outPath := p.outputPath(unit, decl)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	if p.checker != nil {
		if err := p.checker.Check(ctx, outPath); err != nil {
			log.Printf("⚠️  javac check failed for %s: %v", outPath, err)
		} else {
			fmt.Printf("🧪 javac ok: %s\n", outPath)
		}
	}

	return outPath, nil
}

// outputPath derives the deterministic destination for a unit: either
// mirroring the input's relative directory or nesting by the extracted
// package's dotted path. Filename is always <ClassName>Test.java.
func (p *Pipeline) outputPath(unit *crawler.SourceUnit, decl javatext.Decl) string {
	name := decl.Name + "Test.java"
	if p.opts.Layout == "package" {
		pkgDir := filepath.FromSlash(strings.ReplaceAll(decl.Package, ".", "/"))
		return filepath.Join(p.opts.OutDir, pkgDir, name)
	}
	relDir := filepath.Dir(filepath.FromSlash(unit.RelPath))
	return filepath.Join(p.opts.OutDir, relDir, name)
}
