// Command schemec is the compiler's CLI driver, grounded on the teacher's
// cmd/ailang/main.go: flag.FlagSet subcommands plus fatih/color for
// diagnostics, adapted to this compiler's two subcommands instead of
// AILANG's run/repl/test/watch surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/schemec/schemec/internal/builtin"
	"github.com/schemec/schemec/internal/config"
	"github.com/schemec/schemec/internal/cprint"
	"github.com/schemec/schemec/internal/pipeline"
	"github.com/schemec/schemec/internal/repl"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		compileCmd(os.Args[2:])
	case "repl":
		replCmd(os.Args[2:])
	case "-h", "--help", "help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("error"), os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Printf("%s\n\n", bold("schemec - Scheme-to-C compiler core"))
	fmt.Println("Usage:")
	fmt.Println("  schemec compile [-config path] [-o path] <file>")
	fmt.Println("  schemec repl [-config path]")
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a schemec.yaml config file")
	outPath := fs.String("o", "", "output path, overriding the config file's output setting")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "%s: missing input file\n", red("error"))
		fmt.Println("Usage: schemec compile [-config path] [-o path] <file>")
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	if *outPath != "" {
		cfg.OutputPath = *outPath
	}

	file := fs.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}

	res := pipeline.Compile(pipeline.Config{
		Source:        string(src),
		Filename:      file,
		BuiltinTable:  cfg.ResolvedBuiltinTable(builtin.Table),
		BuiltinEnvIDs: cfg.BuiltinEnvIDs,
		SkipEnvTable:  !cfg.ShouldEmitEnvTable(),
	})
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), res.Err)
		os.Exit(1)
	}

	out := cprint.Print(res.Artifacts.Unit)
	if cfg.OutputPath == "-" || cfg.OutputPath == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(cfg.OutputPath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

func replCmd(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a schemec.yaml config file")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	repl.New(cfg).Start(os.Stdout)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	return cfg
}
