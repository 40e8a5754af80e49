package main

import (
	"github.com/spf13/cobra"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/player"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "play <audioType> <fileName>...",
		Short: "Play one or more files",
		Long: `Play each file through the configured adapter. Only mp4 is supported;
other format tags are ignored silently unless --strict is set.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend(opts.cfg, opts.out)
			if err != nil {
				return err
			}
			defer b.Close()
			mp := b.player

			audioType, files := args[0], args[1:]

			if !strict {
				for _, f := range files {
					mp.Play(audioType, f)
				}
				return nil
			}

			svc := player.NewService(mp)
			for _, f := range files {
				if err := svc.Play(audioType, f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported format tags")
	return cmd
}
