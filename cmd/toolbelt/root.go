package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Cyclone1070/toolbelt/internal/config"
	"github.com/Cyclone1070/toolbelt/internal/logging"
	"github.com/Cyclone1070/toolbelt/internal/provider/gemini"
	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/fs"
	"github.com/Cyclone1070/toolbelt/internal/workflow/toolmanager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// errToolFailed is returned after a Failure result has already been reported.
var errToolFailed = errors.New("tool failed")

type options struct {
	workdir    string
	configPath string
	verbose    bool
	yes        bool
}

// app holds what the subcommands share once flags are parsed.
type app struct {
	logger  *zap.Logger
	manager *toolmanager.ToolManager
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:           "toolbelt",
		Short:         "Local tools for an agent: files, directories, grep, shell and JSR search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			osFS := fs.NewOSFileSystem()
			cfg, err := loadConfig(config.NewLoader(osFS), opts.configPath, logger)
			if err != nil {
				return err
			}

			var gate approval.Approver = approval.NewConsole(in, errOut)
			if opts.yes {
				gate = approval.Always(true)
			}

			a.manager, err = newToolManager(cfg, osFS, opts.workdir, gate, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&opts.workdir, "workdir", "C", ".", "directory relative paths are resolved against")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/toolbelt/config.json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every invocation to stderr")
	root.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, "approve every mutating operation without asking")

	root.AddCommand(newToolsCmd(a), newCallCmd(a))
	return root
}

func loadConfig(loader *config.Loader, path string, logger *zap.Logger) (*config.Config, error) {
	if path != "" {
		return loader.LoadFile(path)
	}
	cfg, err := loader.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(err))
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// Declaration output formats for the tools command.
const (
	formatNative = "native"
	formatGemini = "gemini"
)

func newToolsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print every tool declaration as JSON",
		Long: `Print every tool declaration as JSON. With --format=gemini the declarations are
printed as the Gemini tools list of a generate-content request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any
			switch format {
			case formatNative:
				v = a.manager.Declarations()
			case formatGemini:
				v = gemini.Tools(a.manager.Declarations())
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatNative, formatGemini)
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatNative, "declaration format: native or gemini")
	return cmd
}

func newCallCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "call <tool> [args]",
		Short: "Invoke one tool and print its payload",
		Long: `Invoke one tool. args is a JSON object for tools with object parameters.
For tools taking a single value (read_file, list_directory) it may be the bare
value, e.g. "toolbelt call read_file go.mod".

With --format=gemini the invocation goes through the Gemini function-calling
bridge and the Gemini function response is printed; a tool failure is then
reported inside the response and the exit status stays 0.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw any
			if len(args) == 2 {
				raw = parseArgs(args[1])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			switch format {
			case formatNative:
			case formatGemini:
				return callGemini(ctx, cmd.OutOrStdout(), a.manager, args[0], raw)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatNative, formatGemini)
			}

			res := a.manager.Invoke(ctx, args[0], raw)
			if res.Failed() {
				fmt.Fprintln(cmd.ErrOrStderr(), res.String())
				return errToolFailed
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Payload())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatNative, "result format: native or gemini")
	return cmd
}

// callGemini replays the invocation as a Gemini function call. Gemini arguments are
// always an object, so a bare value is sent under the scalar field name.
func callGemini(ctx context.Context, out io.Writer, manager *toolmanager.ToolManager, name string, raw any) error {
	call := &genai.FunctionCall{Name: name}
	switch v := raw.(type) {
	case nil:
	case map[string]any:
		call.Args = v
	default:
		call.Args = map[string]any{tool.ScalarField: v}
	}

	data, err := json.MarshalIndent(gemini.Call(ctx, manager, call), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// parseArgs turns the command-line argument into raw tool parameters. A JSON object
// or JSON string is decoded, numbers kept as json.Number; anything else is passed
// through as a plain string.
func parseArgs(arg string) any {
	trimmed := strings.TrimSpace(arg)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, `"`) {
		return arg
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.InputOffset() != int64(len(trimmed)) {
		return arg
	}
	return v
}
