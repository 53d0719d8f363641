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
	"errors"

	"github.com/d2tools/d2tdb/internal/iodb"
	"github.com/d2tools/d2tdb/internal/iofs"
	"github.com/d2tools/d2tdb/internal/ioseed"
	"github.com/d2tools/d2tdb/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	var example string

	seedCmd := &cobra.Command{
		Use:   "seed [seed.yaml]",
		Short: "Load tools and repositories from a seed file",
		Long: `Insert or update analysis tools and dataset repositories.

Canned analyses can refer only to tools that already exist in the
database, so tools have to be seeded before loading. Rows are matched
by name ignoring case. Empty fields of the seed file keep values that
are already in the database.

Use --example to write an example seed file and edit it.

Examples:
  d2tdb seed --example seed.yaml
  d2tdb seed seed.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSeed(args, example)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	seedCmd.Flags().StringVarP(&example, "example", "e", "",
		"write an example seed file to the given path and exit")

	return seedCmd
}

func runSeed(args []string, example string) error {
	if example != "" {
		if err := iofs.WriteSeedExample(example); err != nil {
			return err
		}
		gn.Info("Example seed file is written to <em>%s</em>", example)
		return nil
	}

	if len(args) == 0 {
		return errors.New("seed file is required, see 'd2tdb seed --help'")
	}
	path := args[0]

	f, err := ioseed.ReadFile(path)
	if err != nil {
		return err
	}
	for _, w := range f.Warnings {
		gn.Warn("%s", w)
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	missing, err := op.MissingTables(ctx, schema.TableNames())
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.Database, missing)
	}

	res, err := ioseed.New(op).Seed(ctx, f)
	if err != nil {
		return err
	}

	gn.Info("Seeded <em>%s</em> tools (%s new) and <em>%s</em> repositories (%s new)",
		humanize.Comma(int64(res.Tools)), humanize.Comma(int64(res.NewTools)),
		humanize.Comma(int64(res.Repositories)),
		humanize.Comma(int64(res.NewRepositories)),
	)
	return nil
}
