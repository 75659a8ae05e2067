package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/config"
	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"github.com/Jaydccq/mini-ups-sub002/pkg/logging"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	"github.com/Jaydccq/mini-ups-sub002/pkg/worldsim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Version = "dev"

type rootFlags struct {
	configPath string
	fleetPath  string
	worldID    int64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "worldsim",
		Short:         "Drive UPS trucks in a World Simulator",
		Long:          "worldsim connects to a World Simulator over its length-prefixed protobuf protocol, sends trucks to pick up and deliver packages, and mirrors truck and shipment state.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().StringVar(&flags.fleetPath, "fleet", "", "TOML fleet seed with trucks and shipments")
	rootCmd.PersistentFlags().Int64Var(&flags.worldID, "world", 0, "world id to join (0 creates a new world)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(flags),
		newPickupCmd(flags),
		newDeliverCmd(flags),
		newQueryCmd(flags),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}

// app is everything a command needs before it talks to the simulator.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	store  *fleet.MemoryStore
}

func loadApp(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(viper.New(), flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("fleet") {
		cfg.Fleet.Path = flags.fleetPath
	}
	if cmd.Flags().Changed("world") {
		cfg.World.ID = flags.worldID
	}

	logger, err := logging.CreateLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	store := fleet.CreateMemoryStore()
	if cfg.Fleet.Path != "" {
		if err := fleet.LoadSeedFile(ctx, cfg.Fleet.Path, store, store); err != nil {
			logger.Sync()
			return nil, err
		}
		logger.Info("Loaded fleet seed", zap.String("path", cfg.Fleet.Path))
	}

	return &app{cfg: cfg, logger: logger, store: store}, nil
}

// withClient connects to the configured world, runs fn and shuts the client
// down again.
func (a *app) withClient(ctx context.Context, onFrame func(debugevent.Event), fn func(ctx context.Context, client *worldsim.Client, worldID int64) error) error {
	client, err := worldsim.CreateClient(worldsim.ClientParams{
		Config:    a.cfg,
		Trucks:    a.store,
		Shipments: a.store,
		OnFrame:   onFrame,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Shutdown(); err != nil {
			a.logger.Warn("Error shutting down world simulator client", zap.Error(err))
		}
	}()

	connectCtx, cancel := context.WithTimeout(ctx, a.cfg.Connection.ConnectTimeout+a.cfg.Connection.HandshakeTimeout)
	defer cancel()
	worldID, err := client.ConnectToWorld(connectCtx, a.cfg.WorldIDOrNil())
	if err != nil {
		return err
	}

	return fn(ctx, client, worldID)
}

// awaitTimeout bounds how long a one-shot command waits on its future; the
// future itself fails first at the configured response timeout.
func (a *app) awaitTimeout() time.Duration {
	return a.cfg.Message.ResponseTimeout + time.Second
}
