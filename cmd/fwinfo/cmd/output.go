package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/export"
	"github.com/ssargent/fwinfo/pkg/info"
)

var kindAliases = map[string]string{
	"fs":    "filesystem",
	"label": "volume-label",
}

// lookupKind resolves a kind name, short alias or GUID string
func lookupKind(name string) (info.Kind, error) {
	if full, ok := kindAliases[name]; ok {
		name = full
	}
	return info.LookupKindName(name)
}

// newName converts s into a UCS-2 record name
func newName(s string) (cstr.CStr16, error) {
	name, err := cstr.FromStrWithBuf(s, make([]uint16, len(s)+1))
	if err != nil {
		container.Metrics().StringRejected(err)
		return cstr.CStr16{}, fmt.Errorf("name %q: %w", s, err)
	}
	return name, nil
}

// readRecordFile decodes the raw record stored at path as kind
func readRecordFile(kind info.Kind, path string) (info.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rec, err := kind.DecodeAligned(data)
	container.Metrics().RecordDecoded(kind.Name, err == nil)
	if err != nil {
		return nil, fmt.Errorf("decode %s record from %s: %w", kind.Name, path, err)
	}
	return rec, nil
}

// buildRecord runs build on a buffer of the configured size and retries
// once with the exact size when that buffer is too small.
func buildRecord(align int, build func(buf []byte) (info.Record, error)) (info.Record, error) {
	size := container.Config().Record.BufferSize
	rec, err := build(info.AlignedBuffer(size, align))

	var se *info.StorageError
	if errors.As(err, &se) {
		container.Logger().Debug("record buffer too small, retrying", "have", size, "need", se.Required)
		rec, err = build(info.AlignedBuffer(se.Required, align))
	}
	return rec, err
}

// printRecord writes the summary of rec in the configured format
func printRecord(cmd *cobra.Command, rec info.Record) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	data, err := export.Marshal(export.Summarize(rec), format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// parseTime accepts RFC 3339 or an empty string for the zero time
func parseTime(s string) (info.Time, error) {
	if s == "" {
		return info.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return info.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	ft := info.TimeFromStd(t)
	if err := ft.Validate(); err != nil {
		return info.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return ft, nil
}
