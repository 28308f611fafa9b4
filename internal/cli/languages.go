package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	humanize "github.com/goliatone/go-humanize-duration"
)

func newLanguagesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the bundled languages with a sample rendered using the root flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFrom(v, newLogger(cmd, v))
			if err != nil {
				return err
			}

			h, err := humanize.NewHumanizer(opts...)
			if err != nil {
				return err
			}

			sample := v.GetFloat64("sample")

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Code", "Name", "Native", "Sample"})

			for _, info := range humanize.Languages() {
				rendered, err := h.Humanize(sample, humanize.WithLanguage(info.Code))
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{info.Code, info.Name, info.Native, rendered})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().Float64("sample", 95000, "milliseconds rendered in every language")
	_ = v.BindPFlag("sample", cmd.Flags().Lookup("sample"))

	return cmd
}
