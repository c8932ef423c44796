package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/revshare"
	revshared "github.com/iov-one/revshare/cmd/revshared/app"
	"github.com/iov-one/revshare/commands/server"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome  = "home"
	flagBind  = "bind"
	flagDebug = "debug"
	flagForce = "force"
)

var logger = log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
	With("module", "revshare")

var rootCmd = &cobra.Command{
	Use:   "revshared",
	Short: "Revenue sharing node",
}

var initCmd = &cobra.Command{
	Use:   "init [owner_address] [amount]",
	Short: "Initialize app state in genesis file",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		home, _ := c.Flags().GetString(flagHome)
		force, _ := c.Flags().GetBool(flagForce)
		keys, err := server.InitCmd(revshared.GenInitOptions, logger, home, force, args)
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			fmt.Println(string(keys))
		}
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the abci server",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}
		if c.Flags().Changed(flagBind) {
			cfg.Bind, _ = c.Flags().GetString(flagBind)
		}
		if c.Flags().Changed(flagDebug) {
			cfg.Debug, _ = c.Flags().GetBool(flagDebug)
		}
		home, _ := c.Flags().GetString(flagHome)
		return server.StartCmd(revshared.GenerateApp, logger, home, cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the app version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Println(revshare.Version)
	},
}

func main() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".revshare")
	rootCmd.PersistentFlags().String(flagHome, defaultHome, "directory to store files under")
	initCmd.Flags().Bool(flagForce, false, "overwrite an existing app_state")
	startCmd.Flags().String(flagBind, "tcp://localhost:26658", "address server listens on (REVSHARE_BIND)")
	startCmd.Flags().Bool(flagDebug, false, "call stack returned on error (REVSHARE_DEBUG)")

	rootCmd.AddCommand(initCmd, startCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
}
