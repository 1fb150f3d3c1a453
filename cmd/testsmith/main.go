package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"testsmith/internal/config"
	"testsmith/internal/extractor"
	"testsmith/internal/generator"
	"testsmith/internal/javatext"
	"testsmith/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "testsmith",
		Short: "AI-powered JUnit test generator for Java sources",
	}
	cfgPath string

	srcDir        string
	outDir        string
	projectID     string
	location      string
	model         string
	delayMs       int
	layout        string
	scaffoldMocks bool
	compileCheck  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "testsmith.yaml", "Path to the YAML config file")

	generateCmd.Flags().StringVarP(&srcDir, "src", "s", "", "Directory with source .java files")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Where to write generated tests")
	generateCmd.Flags().StringVarP(&projectID, "project", "p", "", "Project/credential identifier")
	generateCmd.Flags().StringVar(&location, "location", "", "Service location")
	generateCmd.Flags().StringVarP(&model, "model", "m", "", "Generation model name")
	generateCmd.Flags().IntVar(&delayMs, "delay-ms", -1, "Inter-call delay in milliseconds")
	generateCmd.Flags().StringVar(&layout, "layout", "", "Output layout: mirror or package")
	generateCmd.Flags().BoolVar(&scaffoldMocks, "scaffold-mocks", false, "Inject Mockito field scaffolding into generated tests")
	generateCmd.Flags().BoolVar(&compileCheck, "compile-check", false, "Run javac against each generated file (result is logged only)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig merges the config file with any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("src") {
		cfg.Generator.SourceDir = srcDir
	}
	if cmd.Flags().Changed("out") {
		cfg.Generator.OutDir = outDir
	}
	if cmd.Flags().Changed("project") {
		cfg.Project.ID = projectID
	}
	if cmd.Flags().Changed("location") {
		cfg.Project.Location = location
	}
	if cmd.Flags().Changed("model") {
		cfg.AI.Model = model
	}
	if cmd.Flags().Changed("delay-ms") {
		cfg.Generator.DelayMs = delayMs
	}
	if cmd.Flags().Changed("layout") {
		cfg.Generator.Layout = layout
	}
	if cmd.Flags().Changed("scaffold-mocks") {
		cfg.Generator.ScaffoldMocks = scaffoldMocks
	}
	if cmd.Flags().Changed("compile-check") {
		cfg.Generator.CompileCheck = compileCheck
	}
	return cfg, nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate JUnit test classes for every Java file under --src",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if cfg.Generator.SourceDir == "" {
			log.Fatalf("no source directory configured (use --src or the config file)")
		}
		if cfg.AI.APIKey == "" && cfg.Project.ID == "" {
			log.Fatalf("no credentials configured (set TESTSMITH_API_KEY, ai.api_key, or --project)")
		}

		gen, err := generator.NewGeminiClient(ctx, generator.ClientOptions{
			APIKey:   cfg.AI.APIKey,
			Project:  cfg.Project.ID,
			Location: cfg.Project.Location,
			Model:    cfg.AI.Model,
		})
		if err != nil {
			log.Fatalf("Failed to create generation client: %v", err)
		}

		ext, err := extractor.NewExtractor("java")
		if err != nil {
			log.Fatalf("Failed to create extractor: %v", err)
		}

		fmt.Printf("📂 Scanning directory: %s\n", cfg.Generator.SourceDir)

		p := pipeline.New(gen, ext, pipeline.Options{
			SourceDir:     cfg.Generator.SourceDir,
			OutDir:        cfg.Generator.OutDir,
			Layout:        cfg.Generator.Layout,
			Delay:         cfg.Delay(),
			SkipGlobs:     cfg.Generator.SkipGlobs,
			ScaffoldMocks: cfg.Generator.ScaffoldMocks,
			CompileCheck:  cfg.Generator.CompileCheck,
			JavacPath:     cfg.Generator.JavacPath,
		})

		report, err := p.Run(ctx)
		if err != nil {
			log.Fatalf("Run failed: %v", err)
		}

		fmt.Printf("🎉 Done: %s\n", report.Summary())
		if report.Failed() > 0 {
			os.Exit(1)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Run the structural validator against existing Java files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failures := 0
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				log.Printf("⚠️  %s: %v", path, err)
				failures++
				continue
			}
			if v := javatext.Validate(string(content)); !v.OK {
				fmt.Printf("❌ %s: %s\n", path, v.Reason)
				failures++
			} else {
				fmt.Printf("✅ %s\n", path)
			}
		}
		if failures > 0 {
			os.Exit(1)
		}
	},
}
