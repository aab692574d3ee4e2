package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWith(newCommandContext())
}

func newRootCommandWith(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "studio",
		Short:         "Creator Studio CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&ctx.langFlag, "lang", "l", "en", "Response language (pt or en)")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonFlag, "json", false, "Print raw JSON")

	rootCmd.AddCommand(
		newPitchCommand(ctx),
		newFitCommand(ctx),
		newKitCommand(ctx),
		newAudienceCommand(ctx),
		newScheduleCommand(ctx),
		newCutsCommand(ctx),
		newDistributionCommand(ctx),
		newTrendsCommand(ctx),
		newThumbnailCommand(ctx),
		newVideoAnalysisCommand(ctx),
		newChecklistCommand(ctx),
		newTokenCommand(),
	)
	return rootCmd
}
