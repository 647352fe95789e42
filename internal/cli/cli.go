package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/rtegraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rtegraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rtegraph - Diagrams of AUTOSAR RTE event, task, exclusive area and port relations.

Usage:
  rtegraph [options] [MODEL_PATH]

Arguments:
  MODEL_PATH
    Path to the RTE model XML file.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelFlag := flagSet.String("model", "", "Path to the RTE model XML file.")
	mFlag := flagSet.String("m", "", "Path to the RTE model XML file (shorthand).")
	reportFlag := flagSet.String("report", "all", "Report to generate. Options: 'event-task', 'event-task-grouped', 'exclusive-areas', 'port-mapping' or 'all'.")
	splitFlag := flagSet.Bool("split", false, "Write one exclusive area diagram per area.")
	outFlag := flagSet.String("out", ".", "Directory the diagrams are written to.")
	formatFlag := flagSet.String("format", "dot", "Output format. Options: 'dot', 'svg', 'png', 'pdf' or 'yaml'.")
	viewsFlag := flagSet.String("views", "", "Path to an .hcl view file or a directory of them.")
	dotBinaryFlag := flagSet.String("dot-binary", "dot", "Graphviz binary used for image formats.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	neo4jURIFlag := flagSet.String("neo4j-uri", "", "Neo4j URI to export the diagrams to. Empty disables the export.")
	neo4jUserFlag := flagSet.String("neo4j-user", "neo4j", "Neo4j user name.")
	neo4jPassFlag := flagSet.String("neo4j-pass", "", "Neo4j password.")
	metricsFileFlag := flagSet.String("metrics-file", "", "Write run metrics in Prometheus text format to this file. Empty disables it.")
	neo4jDatabaseFlag := flagSet.String("neo4j-database", "", "Neo4j database. Empty uses the server default.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *modelFlag != "" {
		path = *modelFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Model path determined.", "path", path)

	if path == "" {
		slog.Debug("No model path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		ModelPath:     path,
		Report:        strings.ToLower(*reportFlag),
		Split:         *splitFlag,
		OutDir:        *outFlag,
		Format:        strings.ToLower(*formatFlag),
		ViewsPath:     *viewsFlag,
		DotBinary:     *dotBinaryFlag,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
		Neo4jURI:      *neo4jURIFlag,
		Neo4jUser:     *neo4jUserFlag,
		Neo4jPassword: *neo4jPassFlag,
		Neo4jDatabase: *neo4jDatabaseFlag,
		MetricsFile:   *metricsFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
