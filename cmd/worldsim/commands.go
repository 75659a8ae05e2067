package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	"github.com/Jaydccq/mini-ups-sub002/pkg/transport"
	"github.com/Jaydccq/mini-ups-sub002/pkg/worldsim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to the world and mirror its events until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, cmd, flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			var onFrame func(debugevent.Event)
			wg := sync.WaitGroup{}
			feedCtx, stopFeed := context.WithCancel(ctx)
			defer func() {
				stopFeed()
				wg.Wait()
			}()

			if a.cfg.DebugFeed.Enabled {
				feed, err := transport.CreateDebugFeed(transport.DebugFeedParams{
					ListenAddress:    a.cfg.DebugFeed.ListenAddress,
					ListenEndpoint:   a.cfg.DebugFeed.Endpoint,
					AllowAllHosts:    len(a.cfg.DebugFeed.AllowedOrigins) == 0,
					AllowlistedHosts: a.cfg.DebugFeed.AllowedOrigins,
					RecentBufferSize: a.cfg.DebugFeed.RecentBuffer,
					Logger:           a.logger,
				})
				if err != nil {
					return err
				}
				onFrame = feed.Publish

				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := feed.Start(feedCtx); err != nil {
						a.logger.Error("Debug feed stopped", zap.Error(err))
					}
				}()
			}

			return a.withClient(ctx, onFrame, func(ctx context.Context, client *worldsim.Client, worldID int64) error {
				fmt.Fprintf(cmd.OutOrStdout(), "connected to world %d\n", worldID)
				<-ctx.Done()
				a.logger.Info("Shutting down")
				return nil
			})
		},
	}
}

func newPickupCmd(flags *rootFlags) *cobra.Command {
	var truckID, warehouseID int32

	cmd := &cobra.Command{
		Use:   "pickup",
		Short: "Send a truck to a warehouse",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			return a.withClient(cmd.Context(), nil, func(ctx context.Context, client *worldsim.Client, worldID int64) error {
				awaitCtx, cancel := context.WithTimeout(ctx, a.awaitTimeout())
				defer cancel()

				fut := client.SendTruckToPickup(truckID, warehouseID)
				if _, err := fut.Await(awaitCtx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %d sent to warehouse %d (world %d, seq %d)\n", truckID, warehouseID, worldID, fut.SeqNum)
				return nil
			})
		},
	}

	cmd.Flags().Int32Var(&truckID, "truck", 0, "truck id")
	cmd.Flags().Int32Var(&warehouseID, "warehouse", 0, "warehouse id")
	_ = cmd.MarkFlagRequired("truck")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func newDeliverCmd(flags *rootFlags) *cobra.Command {
	var truckID int32
	var packageArgs []string

	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Send a truck out to deliver packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, err := parsePackages(packageArgs)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			return a.withClient(cmd.Context(), nil, func(ctx context.Context, client *worldsim.Client, worldID int64) error {
				awaitCtx, cancel := context.WithTimeout(ctx, a.awaitTimeout())
				defer cancel()

				fut := client.SendTruckToDeliver(truckID, packages)
				if _, err := fut.Await(awaitCtx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %d out for delivery with %d package(s) (world %d, seq %d)\n", truckID, len(packages), worldID, fut.SeqNum)
				return nil
			})
		},
	}

	cmd.Flags().Int32Var(&truckID, "truck", 0, "truck id")
	cmd.Flags().StringArrayVar(&packageArgs, "package", nil, "package as id:x:y, repeatable")
	_ = cmd.MarkFlagRequired("truck")
	_ = cmd.MarkFlagRequired("package")
	return cmd
}

// parsePackages reads "id:x:y" package destinations.
func parsePackages(args []string) (map[int64]fleet.Location, error) {
	packages := make(map[int64]fleet.Location, len(args))
	for _, raw := range args {
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("package %q: want id:x:y", raw)
		}

		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("package %q: id: %w", raw, err)
		}
		x, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("package %q: x: %w", raw, err)
		}
		y, err := strconv.ParseInt(parts[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("package %q: y: %w", raw, err)
		}

		if _, dup := packages[id]; dup {
			return nil, fmt.Errorf("package %d listed twice", id)
		}
		packages[id] = fleet.Location{X: int32(x), Y: int32(y)}
	}
	return packages, nil
}

func newQueryCmd(flags *rootFlags) *cobra.Command {
	var truckID int32

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask the simulator where a truck is",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			return a.withClient(cmd.Context(), nil, func(ctx context.Context, client *worldsim.Client, _ int64) error {
				awaitCtx, cancel := context.WithTimeout(ctx, a.cfg.Message.QueryTimeout+a.awaitTimeout())
				defer cancel()

				report, err := client.QueryTruckStatus(truckID).Await(awaitCtx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %d at (%d,%d): %s\n", report.TruckID, report.X, report.Y, report.Status)
				return nil
			})
		},
	}

	cmd.Flags().Int32Var(&truckID, "truck", 0, "truck id")
	_ = cmd.MarkFlagRequired("truck")
	return cmd
}
