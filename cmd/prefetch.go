package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/addressdata/internal/model"
	"github.com/sells-group/addressdata/internal/regiondata"
)

var (
	prefetchRegions     string
	prefetchConcurrency int
)

var prefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Warm the offline blob store for a set of regions",
	Long:  "Resolves country-level metadata for the given regions (default: the embedded region set) so later lookups hit the blob store instead of the network.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		regions := regiondata.Countries()
		if prefetchRegions != "" {
			regions = strings.Split(prefetchRegions, ",")
		}

		env, err := initSupplier(ctx, cfg, false)
		if err != nil {
			return err
		}
		defer env.Close()

		log := zap.L()
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(prefetchConcurrency)

		var failed int
		results := make(chan bool, len(regions))
		for _, region := range regions {
			region := strings.ToUpper(strings.TrimSpace(region))
			g.Go(func() error {
				key := model.KeyForAddress(model.Address{RegionCode: region})
				res := env.Supplier.Resolve(gctx, key)
				results <- res.Success
				if !res.Success {
					log.Warn("prefetch failed", zap.String("region", region))
				} else {
					log.Info("prefetched", zap.String("region", region))
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		close(results)
		for ok := range results {
			if !ok {
				failed++
			}
		}

		log.Info("prefetch complete",
			zap.Int("regions", len(regions)),
			zap.Int("failed", failed),
		)
		return nil
	},
}

func init() {
	prefetchCmd.Flags().StringVar(&prefetchRegions, "regions", "", "comma-separated region codes (default: embedded region set)")
	prefetchCmd.Flags().IntVar(&prefetchConcurrency, "concurrency", 4, "max concurrent region fetches")
	rootCmd.AddCommand(prefetchCmd)
}
