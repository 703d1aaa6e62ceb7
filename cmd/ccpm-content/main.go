package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-ccpm"
	"github.com/goliatone/go-ccpm/cmd/ccpm-content/internal/bootstrap"
	"github.com/goliatone/go-ccpm/commands"
	basecommands "github.com/goliatone/go-ccpm/internal/commands"
	contentcmd "github.com/goliatone/go-ccpm/internal/commands/content"
	markdowncmd "github.com/goliatone/go-ccpm/internal/commands/markdown"
	"github.com/goliatone/go-ccpm/internal/contexttag"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	programName = "ccpm-content"
)

var moduleBuilder = bootstrap.BuildModule

var errUsage = errors.New("usage")

type subcommand struct {
	name    string
	summary string
	run     func(ctx context.Context, env *runEnv, args []string) (int, error)
}

type runEnv struct {
	module *bootstrap.Module
	stdout io.Writer
	stderr io.Writer
}

var subcommands = []subcommand{
	{"validate", "validate <file> <context> [--min N]", runValidate},
	{"strip", "strip <input> [--output path] [--default text] [--context tag]", runStrip},
	{"has-content", "has-content <file>", runHasContent},
	{"min-length", "min-length <context>", runMinLength},
	{"detect", "detect <file>", runDetect},
	{"inspect", "inspect <file>", runInspect},
	{"preview", "preview <file>", runPreview},
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a ccpm.yaml configuration file")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format for the gologger provider (json, console, pretty)")
	logProvider := fs.String("log-provider", "", "Logger provider (console, gologger)")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr, fs)
		return exitUsage
	}

	cmd, ok := lookupSubcommand(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "%s: unknown command %q\n", programName, rest[0])
		printUsage(stderr, fs)
		return exitUsage
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:  *configPath,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
		LogProvider: *logProvider,
		Diagnostics: stderr,
		LogWriter:   stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}

	registration, err := commands.RegisterContainerCommands(module.Module.Container(), commands.RegistrationOptions{
		Dispatcher: commands.GlobalDispatcher{},
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: register commands: %v\n", programName, err)
		return exitUsage
	}
	defer registration.Close()

	ctx, runID := bootstrap.RunContext(ctx, cmd.name)
	logger := module.Logger.WithContext(ctx)
	logger.Debug("cli.command.start", "run_id", runID, "args", rest[1:])

	code, err := cmd.run(ctx, &runEnv{module: module, stdout: stdout, stderr: stderr}, rest[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "usage: %s %s\n", programName, cmd.summary)
			return exitUsage
		}
		logger.Error("cli.command.failed", "error", err, "code", basecommands.ErrorCode(err))
		fmt.Fprintf(stderr, "%s %s: %v\n", programName, cmd.name, err)
		return exitUsage
	}
	logger.Debug("cli.command.done", "exit_code", code)
	return code
}

func lookupSubcommand(name string) (subcommand, bool) {
	for _, cmd := range subcommands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return subcommand{}, false
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [flags] <command> [args]\n\ncommands:\n", programName)
	for _, cmd := range subcommands {
		fmt.Fprintf(w, "  %s\n", cmd.summary)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}

// parseArgs lets flags follow positional arguments, e.g. "validate f.md task:1 --min 10".
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, errUsage
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName+" "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runValidate(ctx context.Context, env *runEnv, args []string) (int, error) {
	fs := newFlagSet("validate", env.stderr)
	minChars := fs.Int("min", 0, "Minimum non-whitespace characters (defaults to the context threshold)")
	positional, err := parseArgs(fs, args)
	if err != nil || len(positional) != 2 || *minChars < 0 {
		return 0, errUsage
	}

	msg := contentcmd.ValidateBodyCommand{
		Path:    positional[0],
		Context: positional[1],
		Result:  &contentcmd.ValidateBodyResult{},
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "min" {
			msg.MinChars = minChars
		}
	})
	if err := dispatcher.Dispatch(ctx, msg); err != nil {
		return 0, err
	}
	if !msg.Result.Valid {
		return exitFailed, nil
	}
	return exitOK, nil
}

func runStrip(ctx context.Context, env *runEnv, args []string) (int, error) {
	fs := newFlagSet("strip", env.stderr)
	output := fs.String("output", "", "Destination file (defaults to <category>-<id>-body.md next to the input)")
	defaultContent := fs.String("default", "", "Content written when the body is empty")
	contextTag := fs.String("context", "", "Context tag used to name the output file")
	positional, err := parseArgs(fs, args)
	if err != nil || len(positional) != 1 {
		return 0, errUsage
	}

	input := positional[0]
	target := strings.TrimSpace(*output)
	if target == "" {
		name := "body.md"
		if strings.TrimSpace(*contextTag) != "" {
			name = contexttag.Parse(*contextTag).BodyFileName()
		}
		target = filepath.Join(filepath.Dir(input), name)
	}

	err = dispatcher.Dispatch(ctx, markdowncmd.StripFrontmatterCommand{
		InputPath:      input,
		OutputPath:     target,
		DefaultContent: *defaultContent,
	})
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(env.stdout, target)
	return exitOK, nil
}

func runHasContent(ctx context.Context, env *runEnv, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	result := &markdowncmd.CheckFrontmatterResult{}
	if err := dispatcher.Dispatch(ctx, markdowncmd.CheckFrontmatterCommand{Path: args[0], Result: result}); err != nil {
		return 0, err
	}
	if !result.HasContent {
		return exitFailed, nil
	}
	return exitOK, nil
}

func runMinLength(_ context.Context, env *runEnv, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	fmt.Fprintln(env.stdout, env.module.Module.MinLength(args[0]))
	return exitOK, nil
}

func runDetect(ctx context.Context, env *runEnv, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	eval, err := env.module.Module.Evaluate(ctx, args[0], "", ccpm.ValidateOptions{})
	if err != nil {
		return 0, err
	}
	if eval.Missing {
		return 0, fmt.Errorf("%s does not exist", args[0])
	}
	if !eval.Placeholder {
		fmt.Fprintln(env.stdout, "no placeholder text")
		return exitOK, nil
	}
	fmt.Fprintf(env.stdout, "placeholder: %s\n", eval.PlaceholderMatch)
	return exitFailed, nil
}

func runInspect(ctx context.Context, env *runEnv, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	info, err := env.module.Module.Inspect(ctx, args[0])
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(env.stdout, "Path: %s\n", info.Path)
	switch {
	case !info.HasFrontMatter:
		fmt.Fprintln(env.stdout, "Frontmatter: none")
	case !info.Closed:
		fmt.Fprintln(env.stdout, "Frontmatter: unterminated")
	case info.MetadataErr != nil:
		fmt.Fprintf(env.stdout, "Frontmatter: invalid (%v)\n", info.MetadataErr)
	default:
		frontmatter, err := json.MarshalIndent(info.FrontMatter, "", "  ")
		if err == nil {
			fmt.Fprintf(env.stdout, "Frontmatter:\n%s\n", frontmatter)
		}
	}

	fmt.Fprintf(env.stdout, "Body length: %d chars\n", ccpm.CountNonWhitespace(info.Body))
	if len(info.Outline) > 0 {
		fmt.Fprintln(env.stdout, "Outline:")
		for _, heading := range info.Outline {
			fmt.Fprintf(env.stdout, "%s%s\n", strings.Repeat("  ", heading.Level-1), heading.Text)
		}
	}
	return exitOK, nil
}

func runPreview(ctx context.Context, env *runEnv, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	html, err := env.module.Module.Preview(ctx, args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(env.stdout, "%s", html)
	return exitOK, nil
}
