/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d2tools/d2tdb/internal/ioannot"
	"github.com/d2tools/d2tdb/internal/iodb"
	"github.com/d2tools/d2tdb/internal/ioinput"
	"github.com/d2tools/d2tdb/internal/ioreconcile"
	"github.com/d2tools/d2tdb/internal/iostage"
	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/config"
	"github.com/d2tools/d2tdb/pkg/d2tdb"
	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/d2tools/d2tdb/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	var (
		autoConfirm bool
		stagingDir  string
		jobs        int
	)

	loadCmd := &cobra.Command{
		Use:   "load <table.txt>...",
		Short: "Reconcile tables of canned analyses with the database",
		Long: `Load tab-separated tables of canned analyses.

Every table is loaded in its own transaction:
  1. Metadata of every row is validated
  2. Tools and datasets are found by name ignoring case;
     unknown tools stop the load before any changes
  3. New datasets are described using NCBI E-utilities
  4. Datasets, canned analyses, terms and metadata are inserted
  5. Staging tables are written for review
  6. The transaction is committed after confirmation

Required columns: dataset_accession, tool_name, canned_analysis_url,
metadata. Optional columns: canned_analysis_title,
canned_analysis_description, canned_analysis_preview_url.

Staging tables are kept in ~/.local/share/d2tdb/staging/<name>, where
<name> is the file name without extension and '-canned_analyses'.

Examples:
  d2tdb load enrichr-canned_analyses.txt
  d2tdb load --yes paea.txt l1000cds2.txt
  d2tdb load -s /tmp/staging enrichr.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args, autoConfirm, stagingDir, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().BoolVarP(&autoConfirm, "yes", "y", false,
		"commit without confirmation")
	loadCmd.Flags().StringVarP(&stagingDir, "staging-dir", "s", "",
		"directory for staging tables")
	loadCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of concurrent dataset lookups")

	return loadCmd
}

func runLoad(
	cmd *cobra.Command,
	inputs []string,
	autoConfirm bool,
	stagingDir string,
	jobs int,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	var loadOpts []config.Option
	if cmd.Flags().Changed("yes") {
		loadOpts = append(loadOpts, config.OptLoadAutoConfirm(autoConfirm))
	}
	if cmd.Flags().Changed("staging-dir") {
		loadOpts = append(loadOpts, config.OptLoadStagingDir(stagingDir))
	}
	if cmd.Flags().Changed("jobs") {
		loadOpts = append(loadOpts, config.OptJobsNumber(jobs))
	}
	if len(loadOpts) > 0 {
		cfg.Update(loadOpts)
	}

	// read all tables first, so a broken file stops the load early
	tables := make([]*ioinput.Table, 0, len(inputs))
	for _, path := range inputs {
		tbl, err := ioinput.ReadFile(path)
		if err != nil {
			return err
		}
		if n := len(tbl.Dropped); n > 0 {
			gn.Warn("<em>%s</em>: skipped %d rows with empty required fields",
				tbl.Name, n)
		}
		tables = append(tables, tbl)
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	missing, err := op.MissingTables(ctx, schema.TableNames())
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.Database, missing)
	}

	var confirmer canned.Confirmer = ioreconcile.NewAuto()
	if !cfg.Load.AutoConfirm {
		confirmer = ioreconcile.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	rec := ioreconcile.New(
		cfg,
		ioreconcile.NewStore(op.Pool()),
		ioannot.New(cfg.Annotate),
		confirmer,
		iostage.NewFactory(cfg.StagingPath()),
	)

	for _, tbl := range tables {
		if err = loadTable(ctx, rec, tbl); err != nil {
			return err
		}
	}
	return nil
}

// loadTable reconciles one table. A declined commit is not an error.
func loadTable(
	ctx context.Context,
	rec d2tdb.Reconciler,
	tbl *ioinput.Table,
) error {
	start := time.Now()
	gn.Info("Loading <em>%s</em>: %s records",
		tbl.Name, humanize.Comma(int64(len(tbl.Records))))

	res, err := rec.Reconcile(ctx, tbl.Input)
	if err != nil {
		if gnErr, ok := err.(*gn.Error); ok &&
			gnErr.Code == errcode.ReconcileAbortedError {
			gn.PrintErrorMessage(err)
			return nil
		}
		return err
	}

	s := res.Summary
	gn.Info(`Committed <em>%s</em> in %s:
   canned analyses: %s
   new datasets:    %s
   new terms:       %s
   metadata rows:   %s
   staging tables:  <em>%s</em>`,
		tbl.Name, gnfmt.TimeString(time.Since(start).Seconds()),
		humanize.Comma(int64(s.Analyses)),
		humanize.Comma(int64(s.Datasets)),
		humanize.Comma(int64(s.Terms)),
		humanize.Comma(int64(s.Metadata)),
		iostage.Dir(cfg.StagingPath(), tbl.Name),
	)
	return nil
}
