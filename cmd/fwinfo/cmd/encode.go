package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/info"
)

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a raw information record",
		Long: `Build a raw information record and write it to a file or print it as hex.

Examples:
  fwinfo encode file --name boot.efi --file-size 1024 --attr read-only,archive --out boot.rec
  fwinfo encode fs --name ESP --volume-size 104857600 --free-space 52428800 --block-size 512
  fwinfo encode label --name ESP`,
	}

	fileCmd := &cobra.Command{
		Use:   "file",
		Short: "Build a file info record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := nameFlag(cmd)
			if err != nil {
				return err
			}
			meta, err := fileMetaFlags(cmd)
			if err != nil {
				return err
			}
			rec, err := buildRecord(info.Alignment[info.FileInfoHeader](), func(buf []byte) (info.Record, error) {
				fi, err := info.NewFileInfo(buf, meta, name)
				if err != nil {
					return nil, err
				}
				return fi, nil
			})
			if err != nil {
				return err
			}
			return emitRecord(cmd, "file", rec)
		},
	}
	fileCmd.Flags().Uint64("file-size", 0, "File size in bytes")
	fileCmd.Flags().Uint64("physical-size", 0, "Bytes allocated on the volume")
	fileCmd.Flags().String("create-time", "", "Creation time (RFC 3339)")
	fileCmd.Flags().String("access-time", "", "Last access time (RFC 3339)")
	fileCmd.Flags().String("mod-time", "", "Modification time (RFC 3339)")
	fileCmd.Flags().String("attr", "", "Attributes: read-only, hidden, system, directory, archive")

	fsCmd := &cobra.Command{
		Use:   "fs",
		Short: "Build a filesystem info record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := nameFlag(cmd)
			if err != nil {
				return err
			}
			var meta info.FileSystemMeta
			meta.ReadOnly, _ = cmd.Flags().GetBool("read-only")
			meta.VolumeSize, _ = cmd.Flags().GetUint64("volume-size")
			meta.FreeSpace, _ = cmd.Flags().GetUint64("free-space")
			meta.BlockSize, _ = cmd.Flags().GetUint32("block-size")

			rec, err := buildRecord(info.Alignment[info.FileSystemInfoHeader](), func(buf []byte) (info.Record, error) {
				fs, err := info.NewFileSystemInfo(buf, meta, name)
				if err != nil {
					return nil, err
				}
				return fs, nil
			})
			if err != nil {
				return err
			}
			return emitRecord(cmd, "filesystem", rec)
		},
	}
	fsCmd.Flags().Bool("read-only", false, "Volume only supports reads")
	fsCmd.Flags().Uint64("volume-size", 0, "Volume size in bytes")
	fsCmd.Flags().Uint64("free-space", 0, "Free space in bytes")
	fsCmd.Flags().Uint32("block-size", 512, "Nominal block size in bytes")

	labelCmd := &cobra.Command{
		Use:   "label",
		Short: "Build a volume label record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := nameFlag(cmd)
			if err != nil {
				return err
			}
			rec, err := buildRecord(info.Alignment[info.FileSystemVolumeLabelHeader](), func(buf []byte) (info.Record, error) {
				l, err := info.NewFileSystemVolumeLabel(buf, name)
				if err != nil {
					return nil, err
				}
				return l, nil
			})
			if err != nil {
				return err
			}
			return emitRecord(cmd, "volume-label", rec)
		},
	}

	for _, c := range []*cobra.Command{fileCmd, fsCmd, labelCmd} {
		c.Flags().String("name", "", "Record name (file name or volume label)")
		c.Flags().String("out", "", "Write the raw record to this file instead of printing hex")
		if err := c.MarkFlagRequired("name"); err != nil {
			panic(err)
		}
		encodeCmd.AddCommand(c)
	}
	return encodeCmd
}

func nameFlag(cmd *cobra.Command) (cstr.CStr16, error) {
	s, _ := cmd.Flags().GetString("name")
	return newName(s)
}

func fileMetaFlags(cmd *cobra.Command) (info.FileMeta, error) {
	var meta info.FileMeta
	var err error

	meta.FileSize, _ = cmd.Flags().GetUint64("file-size")
	meta.PhysicalSize, _ = cmd.Flags().GetUint64("physical-size")

	for flag, dst := range map[string]*info.Time{
		"create-time": &meta.CreateTime,
		"access-time": &meta.LastAccessTime,
		"mod-time":    &meta.ModificationTime,
	} {
		s, _ := cmd.Flags().GetString(flag)
		if *dst, err = parseTime(s); err != nil {
			return meta, fmt.Errorf("--%s: %w", flag, err)
		}
	}

	attr, _ := cmd.Flags().GetString("attr")
	if meta.Attribute, err = info.ParseFileAttribute(attr); err != nil {
		return meta, fmt.Errorf("--attr: %w", err)
	}
	if meta.Attribute&^info.ValidAttr != 0 {
		return meta, fmt.Errorf("--attr: %s cannot be set", meta.Attribute&^info.ValidAttr)
	}
	return meta, nil
}

// emitRecord writes rec to --out or prints a hex dump
func emitRecord(cmd *cobra.Command, kind string, rec info.Record) error {
	container.Metrics().RecordEncoded(kind, rec.Len())
	container.Logger().Info("record encoded", "kind", kind, "name", rec.Name().String(), "bytes", rec.Len())

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		cmd.Print(hex.Dump(rec.Bytes()))
		return nil
	}
	if err := os.WriteFile(out, rec.Bytes(), 0600); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	cmd.Printf("Wrote %d byte %s record to %s\n", rec.Len(), kind, out)
	return nil
}
