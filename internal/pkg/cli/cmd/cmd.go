// Package cmd defines the command line interface of the generator.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/cobra"

	cliDependencies "github.com/hw-tools/crategen/internal/pkg/cli/dependencies"
	"github.com/hw-tools/crategen/internal/pkg/cli/dialog"
	"github.com/hw-tools/crategen/internal/pkg/cli/options"
	"github.com/hw-tools/crategen/internal/pkg/cli/prompt"
	"github.com/hw-tools/crategen/internal/pkg/env"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
	"github.com/hw-tools/crategen/internal/pkg/version"
	generateOp "github.com/hw-tools/crategen/pkg/lib/operation/crates/generate"
)

type Cmd = cobra.Command

type RootCommand struct {
	*Cmd
	Options *options.Options
	Logger  log.Logger
	Deps    *cliDependencies.Container
	logFile *log.File
}

// NewRootCommand creates the root command, `crategen <devices dir>`.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, prompt prompt.Prompt, envs *env.Map, fsFactory filesystem.Factory) *RootCommand {
	root := &RootCommand{
		Options: options.New(),
		Logger:  log.NewMemoryLogger(), // temporary logger, we don't have a path to the log file yet
	}
	root.Cmd = &Cmd{
		Use:           fmt.Sprintf("%s <devices dir>", path.Base(os.Args[0])),
		Version:       version.Version(),
		Short:         "Generate the packaging and documentation files of the device support crates.",
		Long: "Generate Cargo.toml, build.rs, README.md and src/lib.rs for each device family,\n" +
			"based on the device description files found in the given directory.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // custom error handling, see printError
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateOp.Run(generateOp.Options{
				DevicesDir:    args[0],
				PartTablePath: root.Options.GetString(options.PartTableOpt),
			}, root.Deps)
		},
	}

	// Setup in/out
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Version}}")

	// Flags
	flags := root.Flags()
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.StringP("part-table", "p", "", "path to the device part table, defaults to the file next to the executable")
	flags.BoolP("verbose", "v", false, "print details")
	flags.BoolP("assume-yes", "y", false, "generate without the confirmation prompt")
	flags.BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Create filesystem abstraction
		workingDir, _ := cmd.Flags().GetString(options.WorkingDirOpt)
		fs, err := fsFactory(root.Logger, workingDir)
		if err != nil {
			return err
		}

		// Load values from flags and envs
		if err := root.Options.Load(root.Logger, envs, fs, cmd.Flags()); err != nil {
			return err
		}

		// Setup logger
		root.setupLogger()
		fs.SetLogger(root.Logger)
		root.Logger.Debug(`Working dir: `, fs.BasePath())

		// Create dependencies container
		root.Deps = cliDependencies.NewContainer(envs, fs, dialog.New(prompt), root.Logger, root.Options)
		return nil
	}

	return root
}

// Execute runs the command and returns the process exit code.
func (root *RootCommand) Execute() (exitCode int) {
	defer func() {
		exitCode = root.tearDown(exitCode, recover())
	}()

	if err := root.Cmd.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *RootCommand) printError(err error) {
	root.PrintErrln(errors.PrefixError(err, "Error"))
}

func (root *RootCommand) setupLogger() {
	// Get log file
	logFilePath := root.Options.GetString(options.LogFileOpt)
	var logFileErr error
	root.logFile, logFileErr = log.NewLogFile(logFilePath)

	// Get temporary logger
	memoryLogger, _ := root.Logger.(*log.MemoryLogger)

	// Create logger
	root.Logger = log.NewCliLogger(root.OutOrStdout(), root.ErrOrStderr(), root.logFile, root.Options.GetBool(options.VerboseOpt))
	root.SetOut(root.Logger.InfoWriter())
	root.SetErr(root.Logger.WarnWriter())

	// Warn if user specified log file + it cannot be opened
	if logFileErr != nil && logFilePath != "" {
		root.Logger.Warnf("Cannot open log file: %s", logFileErr)
	}

	// Log info
	w := root.Logger.DebugWriter()
	w.WriteString(root.Version)
	w.WriteString(fmt.Sprintf("Running command %v", os.Args))
	w.WriteString(root.Options.Dump())
	if root.logFile == nil {
		w.WriteString(`Log file: -`)
	} else {
		w.WriteString(`Log file: ` + root.logFile.Path())
	}

	// Copy logs from the temporary logger
	if memoryLogger != nil {
		memoryLogger.CopyLogsTo(root.Logger)
	}
}

// tearDown does clean-up after command execution.
func (root *RootCommand) tearDown(exitCode int, panicErr any) int {
	// Logger may be uninitialized, if error occurred before initialization
	if _, ok := root.Logger.(*log.MemoryLogger); ok {
		root.setupLogger()
	}

	if panicErr != nil {
		logFilePath := ""
		if root.logFile != nil {
			logFilePath = root.logFile.Path()
		}
		exitCode = processPanic(panicErr, root.Logger, logFilePath)
	}

	// Close log file
	root.logFile.TearDown(exitCode != 0)
	return exitCode
}
