package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/0xDegenDeveloper/ui-clone/services"
	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

var cardCmd = &cobra.Command{
	Use:   "card <address>",
	Short: "Read a vault card",
	Long:  "Read the vault type of a vault contract and print its card as plain text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVaultCard(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)

	cardCmd.Flags().StringP("config", "c", "", "Path to the config file, if empty string defaults will be used")
	cardCmd.Flags().DurationP("timeout", "t", 10*time.Second, "Maximum time to wait for the vault type")
	cardCmd.Flags().Bool("open", false, "Click the card after it loaded and print the navigation target")
}

// printNavigator writes pushed routes instead of navigating
type printNavigator struct {
	out io.Writer
}

func (n *printNavigator) Push(path string) {
	fmt.Fprintf(n.out, "-> %v\n", path)
}

func printVaultCard(cmd *cobra.Command, address string) error {
	configPath, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	open, _ := cmd.Flags().GetBool("open")

	cfg := &types.Config{}
	if err := utils.ReadConfig(cfg, configPath); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	utils.Config = cfg
	logWriter, logger := utils.InitLogger()
	defer logWriter.Dispose()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if err := services.InitVaultService(ctx, logger); err != nil {
		return fmt.Errorf("error initializing vault service: %w", err)
	}
	defer services.GlobalVaultService.Close()

	card := services.GlobalVaultService.NewVaultCard(address)
	defer card.Close()

	query := card.Wait(ctx)
	switch query.Status {
	case services.VaultTypeStatusSuccess:
	case services.VaultTypeStatusError:
		return query.Error
	default:
		return fmt.Errorf("vault type of %v not loaded within %v", address, timeout)
	}

	out := cmd.OutOrStdout()
	cardData := services.GlobalVaultService.BuildCardData(card)
	for _, line := range cardData.Lines() {
		fmt.Fprintln(out, line)
	}

	if open {
		card.Click(&printNavigator{out: out})
	}

	logger.WithFields(logrus.Fields{
		"vault":      address,
		"type":       query.ActiveVariant(),
		"cycle":      query.CycleID,
		"connection": services.GlobalVaultService.GetConnection().Mode,
	}).Debug("vault card printed")

	return nil
}
