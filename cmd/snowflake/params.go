package main

import (
	"github.com/spf13/cobra"
)

func newParamsCmd() *cobra.Command {
	model := newModelFlags()
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameter set as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	model.bind(cmd.Flags())
	return cmd
}
