package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"caseview/internal/crawler"
	"caseview/internal/export"
	"caseview/internal/graph"
	"caseview/internal/logger"
	"caseview/internal/model"
	"caseview/internal/render"
	"caseview/internal/source"
	"caseview/internal/storage"
	"caseview/internal/view"
)

func newTreeCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "tree <input>",
		Short: "Print the category tree of an evidence document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if dryRun {
				st := graph.Stats(reg)
				logger.Info("exiting dry run", "objects", st.Objects, "records", st.Records, "issues", len(reg.Issues))
				return nil
			}
			return render.Tree(a.stdout, a.tree(reg))
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Load the document and exit without printing the tree")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table <input> <node-id>",
		Short: "Print the records behind a tree node",
		Long: "Print the records behind a tree node. The node id is shown next to each tree label;\n" +
			"a chat thread id lists that thread's messages, and a category name such as\n" +
			"\"applications\" reaches categories the tree does not show.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			headers, rows, err := view.Rows(reg, args[1])
			if err != nil {
				return err
			}
			return render.Table(a.stdout, headers, rows)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <input> <node-id> <row>",
		Short: "Print every field of one record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("row must be a number: %w", err)
			}
			reg, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rec, err := view.Detail(reg, args[1], row)
			if err != nil {
				return err
			}
			return render.Detail(a.stdout, rec)
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export <input>",
		Short: "Export the resolved records to SQLite or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			tree := a.tree(reg)

			switch format {
			case "sqlite":
				if out == "" {
					out = a.cfg.Storage.DBPath
				}
				store, err := storage.NewSQLiteStore(out)
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				defer store.Close()
				if err := store.SaveSnapshot(ctx, storage.Snapshot{Source: args[0], Registry: reg, Tree: tree}); err != nil {
					return fmt.Errorf("failed to save snapshot: %w", err)
				}

			case "json":
				doc := export.Build(args[0], reg, tree)
				switch {
				case out == "" || out == "-":
					out = "stdout"
					if err := export.Write(a.stdout, doc); err != nil {
						return err
					}
				case source.IsObjectURL(out):
					objects, err := a.objects(ctx)
					if err != nil {
						return err
					}
					var buf bytes.Buffer
					if err := export.Write(&buf, doc); err != nil {
						return err
					}
					if err := objects.Put(ctx, out, "application/json", &buf); err != nil {
						return err
					}
				default:
					if err := export.SaveFile(out, doc); err != nil {
						return err
					}
				}

			default:
				return fmt.Errorf("unknown format %q, want sqlite or json", format)
			}

			logger.Info("snapshot exported", "format", format, "out", out, "records", graph.Stats(reg).Records)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "sqlite", "Export format: sqlite or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (sqlite defaults to the configured db_path, json to stdout; s3:// is accepted for json)")
	return cmd
}

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Load every evidence document under a directory and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			err := crawler.NewCrawler(a.options()).Scan(cmd.Context(), args[0], func(r crawler.Result) {
				if r.Err != nil {
					failed++
					fmt.Fprintf(a.stdout, "%s\tERROR\t%v\n", r.Path, r.Err)
					logger.Error("failed to load evidence", "path", r.Path, "err", r.Err)
					return
				}
				issues := 0
				for _, n := range r.Stats.Issues {
					issues += n
				}
				fmt.Fprintf(a.stdout, "%s\t%d objects\t%d records\t%d issues\t%s\n",
					r.Path, r.Stats.Objects, r.Stats.Records, issues, categorySummary(r.Stats))
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d document(s) failed to load", failed)
			}
			return nil
		},
	}
}

func categorySummary(st graph.LoadStats) string {
	var parts []string
	for _, c := range model.AllCategories {
		if n := st.Categories[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	return strings.Join(parts, " ")
}
