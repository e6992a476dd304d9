package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skdltmxn/refmeta/reflection"
)

var checkCmd = &cobra.Command{
	Use:   "check <model>",
	Short: "Resolve every metadata entry of a class model",
	Long: `Resolve every method, constructor and field entry of every class in a
class model, in parallel, and report the entries that cannot be served
reflectively or whose descriptors do not resolve.

The number of workers comes from check.workers in the configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, u, err := openModel(args[0])
	if err != nil {
		return err
	}

	reports, err := checkUniverse(cmd.Context(), u, cfg.Check.Workers)
	if err != nil {
		return err
	}

	var entries, problems int
	for _, rep := range reports {
		c, _ := u.Lookup(rep.Name)
		entries += entryCount(c.Metadata())
		for _, p := range rep.Problems {
			fmt.Fprintf(output, "%s: %s %s: %s\n", rep.Name, p.Table, p.Key, p.Reason)
			problems++
		}
	}
	fmt.Fprintf(output, "\nChecked %d class(es), %d entries: %d problem(s)\n", len(reports), entries, problems)

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

// checkUniverse builds a report per class of u, in definition order.
func checkUniverse(ctx context.Context, u *reflection.Universe, workers int) ([]*ClassReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}
	r := u.Resolver()

	var classes []*reflection.RuntimeClass
	for c := range u.Classes() {
		classes = append(classes, c)
	}
	reports := make([]*ClassReport, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range classes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = buildReport(r, c)
			logger.Debug("class checked",
				zap.String("class", c.Name()),
				zap.Int("problems", len(reports[i].Problems)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
