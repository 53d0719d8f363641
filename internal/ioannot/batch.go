package ioannot

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/d2tools/d2tdb/pkg/canned"
	"golang.org/x/sync/errgroup"
)

// AnnotateAll describes accessions using up to jobs concurrent lookups.
// Results keep the order of accessions. If progress is true a progress bar
// is shown on the terminal.
func AnnotateAll(
	ctx context.Context,
	a canned.Annotator,
	accessions []string,
	jobs int,
	progress bool,
) []canned.Annotation {
	res := make([]canned.Annotation, len(accessions))
	if len(accessions) == 0 {
		return res
	}

	var bar *pb.ProgressBar
	if progress {
		bar = pb.Full.Start(len(accessions))
		bar.Set("prefix", "Annotating datasets: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, acc := range accessions {
		g.Go(func() error {
			res[i] = a.Annotate(ctx, acc)
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	_ = g.Wait()

	return res
}
