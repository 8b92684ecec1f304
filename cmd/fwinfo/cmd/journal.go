package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/codec"
)

func newJournalCmd() *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Append to and query the record journal",
		Long: `The journal is an append-only file of checksummed record envelopes.
Its location is journal.path in the configuration file.`,
	}

	appendCmd := &cobra.Command{
		Use:   "append <path>",
		Short: "Append a raw record file to the journal",
		Args:  cobra.ExactArgs(1),
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
			j, err := container.Journal()
			if err != nil {
				return err
			}

			start := time.Now()
			entry, err := j.Append(rec)
			container.Metrics().RecordStorageOperation("journal", "append", err == nil, time.Since(start))
			if err != nil {
				return err
			}
			container.Logger().Info("record appended", "kind", kind.Name, "name", rec.Name().String(), "offset", entry.Offset)
			cmd.Printf("Appended %s %q at offset %d\n", kind.Name, rec.Name().String(), entry.Offset)
			return nil
		},
	}
	appendCmd.Flags().String("kind", "", "Record kind: file, fs, label or a GUID")
	if err := appendCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every journal entry in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := container.Journal()
			if err != nil {
				return err
			}

			start := time.Now()
			err = j.Scan(func(offset int64, env *codec.Envelope) error {
				name := "?"
				if rec, err := env.Record(); err == nil {
					name = rec.Name().String()
				}
				cmd.Printf("%8d  %-12s  %-30q  %s\n", offset, kindLabel(env.Kind), name, env.Time().UTC().Format(time.RFC3339))
				return nil
			})
			container.Metrics().RecordStorageOperation("journal", "scan", err == nil, time.Since(start))
			return err
		},
	}

	findCmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Print the latest record of a kind with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName, _ := cmd.Flags().GetString("kind")
			kind, err := lookupKind(kindName)
			if err != nil {
				return err
			}
			j, err := container.Journal()
			if err != nil {
				return err
			}

			start := time.Now()
			env, err := j.Find(kind.GUID, args[0])
			container.Metrics().RecordStorageOperation("journal", "find", err == nil, time.Since(start))
			if err != nil {
				return err
			}
			rec, err := env.Record()
			container.Metrics().RecordDecoded(kind.Name, err == nil)
			if err != nil {
				return err
			}
			return printRecord(cmd, rec)
		},
	}
	findCmd.Flags().String("kind", "", "Record kind: file, fs, label or a GUID")
	if err := findCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}

	journalCmd.AddCommand(appendCmd, listCmd, findCmd)
	return journalCmd
}
