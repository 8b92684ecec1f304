package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/guid"
	"github.com/ssargent/fwinfo/pkg/info"
)

func newGUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guid [name]",
		Short: "List known GUIDs",
		Long: `List the record kinds and well-known configuration table GUIDs.
With an argument, print the matching entry and its on-disk byte order.
The argument may be a name or a GUID string.

Example:
  fwinfo guid
  fwinfo guid file
  fwinfo guid 8868e871-e4f1-11d3-bc22-0080c73c8881`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := knownGUIDs()
			if len(args) == 0 {
				for _, e := range entries {
					cmd.Printf("%s  %s\n", e.GUID, e.Name)
				}
				return nil
			}

			query := args[0]
			for _, e := range entries {
				if strings.EqualFold(e.Name, query) || e.GUID.String() == strings.ToLower(query) {
					cmd.Printf("%s  %s\n", e.GUID, e.Name)
					cmd.Printf("bytes: % x\n", e.GUID[:])
					return nil
				}
			}

			g, err := guid.Parse(query)
			if err != nil {
				return fmt.Errorf("no known GUID named %q", query)
			}
			cmd.Printf("%s  (unknown)\n", g)
			cmd.Printf("bytes: % x\n", g[:])
			return nil
		},
	}
}

func knownGUIDs() []guid.Named {
	var entries []guid.Named
	for _, k := range info.Kinds() {
		entries = append(entries, guid.Named{Name: k.Name, GUID: k.GUID})
	}
	return append(entries, guid.ConfigTables()...)
}
