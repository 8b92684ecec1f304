package cmd

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/guid"
	"github.com/ssargent/fwinfo/pkg/info"
	"github.com/ssargent/fwinfo/pkg/storage"
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Store and fetch records by id",
		Long: `The catalog is a pebble database of record envelopes keyed by KSUID.
Its location is catalog.dir in the configuration file.`,
	}

	putCmd := &cobra.Command{
		Use:   "put <path>",
		Short: "Store a raw record file and print its id",
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
			cat, err := container.Catalog()
			if err != nil {
				return err
			}

			start := time.Now()
			id, err := cat.PutRecord(rec)
			container.Metrics().RecordStorageOperation("catalog", "put", err == nil, time.Since(start))
			if err != nil {
				return err
			}
			container.Logger().Info("record stored", "id", id.String(), "kind", kind.Name)
			cmd.Printf("%s\n", id)
			return nil
		},
	}
	putCmd.Flags().String("kind", "", "Record kind: file, fs, label or a GUID")
	if err := putCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print the record stored under an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			cat, err := container.Catalog()
			if err != nil {
				return err
			}

			start := time.Now()
			env, err := cat.Get(id)
			container.Metrics().RecordStorageOperation("catalog", "get", err == nil, time.Since(start))
			if err != nil {
				return err
			}
			rec, err := env.Record()
			container.Metrics().RecordDecoded(kindLabel(env.Kind), err == nil)
			if err != nil {
				return err
			}
			return printRecord(cmd, rec)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete the record stored under an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			cat, err := container.Catalog()
			if err != nil {
				return err
			}

			start := time.Now()
			err = cat.Delete(id)
			container.Metrics().RecordStorageOperation("catalog", "delete", err == nil, time.Since(start))
			if err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", id)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := container.Catalog()
			if err != nil {
				return err
			}
			return cat.List(func(e storage.Entry) error {
				name := "?"
				if rec, err := e.Envelope.Record(); err == nil {
					name = rec.Name().String()
				}
				cmd.Printf("%s  %-12s  %q\n", e.ID, kindLabel(e.Envelope.Kind), name)
				return nil
			})
		},
	}

	catalogCmd.AddCommand(putCmd, getCmd, deleteCmd, listCmd)
	return catalogCmd
}

// kindLabel names a kind GUID, falling back to the GUID itself
func kindLabel(g guid.GUID) string {
	if k, err := info.LookupKind(g); err == nil {
		return k.Name
	}
	return g.String()
}
