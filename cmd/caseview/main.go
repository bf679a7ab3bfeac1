package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"caseview/internal/config"
	"caseview/internal/graph"
	"caseview/internal/logger"
	"caseview/internal/logger/console"
	"caseview/internal/model"
	"caseview/internal/source"
	"caseview/internal/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(&app{stdout: stdout, stderr: stderr})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// app carries what every subcommand shares.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	debug      bool
	strict     bool

	cfg *config.Config
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "caseview",
		Short:         "Browse CASE/UCO JSON-LD evidence from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "caseview.yaml", "Path to the config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log every record issue")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "Fail on the first per-record schema problem")

	root.AddCommand(
		newTreeCmd(a),
		newTableCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newScanCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.debug {
		cfg.Log.Debug = true
	}
	if a.strict {
		cfg.Input.Strict = true
	}
	a.cfg = cfg
	logger.Init(console.New(console.Params{Debug: cfg.Log.Debug, Output: a.stderr}))
	return nil
}

func (a *app) options() graph.Options {
	return graph.Options{Strict: a.cfg.Input.Strict}
}

func (a *app) objects(ctx context.Context) (*source.Objects, error) {
	s3 := a.cfg.S3
	return source.NewObjects(ctx, source.S3Params{
		Region:       s3.Region,
		Endpoint:     s3.Endpoint,
		AccessKey:    s3.AccessKey,
		SecretKey:    s3.SecretKey,
		UsePathStyle: s3.UsePathStyle,
	})
}

// load opens location, local or s3://, and loads the document.
func (a *app) load(ctx context.Context, location string) (*model.Registry, error) {
	router := source.Router{}
	if source.IsObjectURL(location) {
		objects, err := a.objects(ctx)
		if err != nil {
			return nil, err
		}
		router.Objects = objects
	}

	rc, err := router.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	logger.Debug("loading evidence", "source", location, "strict", a.cfg.Input.Strict)
	reg, err := graph.LoadReader(ctx, rc, a.options())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	logger.Info("evidence loaded", "source", location, "objects", reg.Objects, "issues", len(reg.Issues))
	return reg, nil
}

func (a *app) tree(reg *model.Registry) *view.Node {
	return view.Tree(reg, view.NewPrinter(a.cfg.Summary.Locale))
}
