package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/cstr"
)

func newCStr16Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cstr16 <text>",
		Short: "Encode text as a null-terminated UCS-2 string",
		Long: `Encode text as a null-terminated UCS-2 string and print its code units.
Characters outside the Basic Multilingual Plane are rejected.

Example:
  fwinfo cstr16 'EFI\BOOT'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cstr.FromStrWithBuf(args[0], make([]uint16, len(args[0])+1))
			if err != nil {
				container.Metrics().StringRejected(err)
				return err
			}

			units := make([]string, 0, s.Len()+1)
			for _, u := range s.U16sWithNul() {
				units = append(units, fmt.Sprintf("%04x", u))
			}
			cmd.Printf("%s\n", strings.Join(units, " "))
			cmd.Printf("%d characters, %d bytes\n", s.Len(), s.NumBytes())
			return nil
		},
	}
}

func newCStr8Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cstr8 <text>",
		Short: "Encode text as a null-terminated Latin-1 string",
		Long: `Encode text as a null-terminated Latin-1 string and print its bytes.
Characters above U+00FF are rejected.

Example:
  fwinfo cstr8 'café'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cstr.FromStrWithBuf8(args[0], make([]byte, len(args[0])+1))
			if err != nil {
				container.Metrics().StringRejected(err)
				return err
			}

			units := make([]string, 0, s.Len()+1)
			for _, b := range s.BytesWithNul() {
				units = append(units, fmt.Sprintf("%02x", b))
			}
			cmd.Printf("%s\n", strings.Join(units, " "))
			cmd.Printf("%q, %d characters\n", s.String(), s.Len())
			return nil
		},
	}
}
