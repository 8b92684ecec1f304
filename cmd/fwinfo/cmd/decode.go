package cmd

import (
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <path>",
		Short: "Decode a raw information record",
		Long: `Decode a raw information record with the bounded decoder of its kind
and print a summary. The decoder never reads past the end of the file.

Example:
  fwinfo decode --kind file boot.rec
  fwinfo decode --kind fs -o json esp.rec`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName, _ := cmd.Flags().GetString("kind")
			kind, err := lookupKind(kindName)
			if err != nil {
				return err
			}
			rec, err := readRecordFile(kind, args[0])
			if err != nil {
				return err
			}
			return printRecord(cmd, rec)
		},
	}
	decodeCmd.Flags().String("kind", "", "Record kind: file, fs, label or a GUID")
	if err := decodeCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}
	return decodeCmd
}
