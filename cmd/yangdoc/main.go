// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

// yangdoc compiles YANG model documents into OpenAPI definitions.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/yangdoc"
	"github.com/woozymasta/yangdoc/yang"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/yangdoc"
	_buildTime string
)

// cliOptions describes yangdoc CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Compile compileCommand `command:"compile" description:"Compile model documents into OpenAPI definitions"`
	Dump    dumpCommand    `command:"dump" description:"Dump the decoded schema model for debugging"`
}

// compileFlags groups compilation flags shared by subcommands.
type compileFlags struct {
	Format       string   `short:"f" long:"format" description:"Output document format" choice:"json" choice:"yaml" default:"json"`
	SingleModule bool     `short:"s" long:"single-module" description:"Emit the whole-module aggregate wrapper (first model only)"`
	Prefix       string   `short:"p" long:"prefix" description:"Components prefix for $ref targets" default:"#/components/schemas/"`
	Extra        []string `short:"m" long:"extra-model" description:"Additional model document compiled into the same output, repeatable"`
	Verbose      bool     `short:"v" long:"verbose" description:"Log compiler progress and degraded-path warnings to stderr"`
}

// compileCommand compiles model documents into one definitions document.
type compileCommand struct {
	runner *cliRunner

	CompileFlags compileFlags `group:"Compile"`
	Args         struct {
		Model  string `positional-arg-name:"model" description:"Input model document path (YAML)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs compile subcommand.
func (command *compileCommand) Execute(_ []string) error {
	paths := append([]string{command.Args.Model}, command.CompileFlags.Extra...)
	return command.runner.runCompile(command.CompileFlags, paths, command.Args.Output)
}

// dumpCommand prints the decoded model tree.
type dumpCommand struct {
	runner *cliRunner

	Args struct {
		Models []string `positional-arg-name:"model" description:"Input model document paths (YAML)" required:"1"`
	} `positional-args:"yes"`
}

// Execute runs dump subcommand.
func (command *dumpCommand) Execute(_ []string) error {
	return command.runner.runDump(command.Args.Models)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	fmt.Fprintf(command.runner.stdout, "yangdoc %s (%s) built %s\n%s\n",
		Version, Commit, BuildTime.Format(time.RFC3339), URL)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "yangdoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runCompile decodes all model documents, compiles them into one shared
// definitions document, and writes the selected output format.
func (runner *cliRunner) runCompile(options compileFlags, modelPaths []string, outputPath string) error {
	modules, ctx, err := loadModules(modelPaths)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if options.Verbose {
		logger = slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	defs := make(yangdoc.Definitions)
	names := yangdoc.NewDefinitionNames()
	if options.SingleModule && len(modules) > 0 {
		names.Reserve(modules[0].Name + "_module")
	}

	for index, module := range modules {
		err := yangdoc.CompileInto(module, ctx, defs, names, yangdoc.Options{
			SingleModule:     options.SingleModule && index == 0,
			ComponentsPrefix: options.Prefix,
			Logger:           logger,
		})
		if err != nil {
			return fmt.Errorf("compile %q: %w", module.Name, err)
		}
	}

	var data []byte
	switch options.Format {
	case "yaml":
		data, err = yangdoc.MarshalDocumentYAML(defs)
	default:
		data, err = yangdoc.MarshalDocumentJSON(defs)
	}

	if err != nil {
		return err
	}

	return runner.writeOutput(data, outputPath)
}

// runDump prints the decoded model tree of every input document.
func (runner *cliRunner) runDump(modelPaths []string) error {
	modules, _, err := loadModules(modelPaths)
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for _, module := range modules {
		dumper.Fdump(runner.stdout, module)
	}

	return nil
}

// loadModules reads and decodes model documents and builds their context.
func loadModules(paths []string) ([]*yang.Module, *yang.ModelContext, error) {
	docs := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read model file %q: %w", path, err)
		}

		docs = append(docs, data)
	}

	modules, err := yang.DecodeModules(docs...)
	if err != nil {
		return nil, nil, err
	}

	return modules, yang.NewModelContext(modules...), nil
}

// writeOutput writes result bytes to file path or stdout.
func (runner *cliRunner) writeOutput(data []byte, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		_, err := runner.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file %q: %w", path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Compile.runner = runner
	options.Dump.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName

	_, err := parser.ParseArgs(args)
	return err
}
