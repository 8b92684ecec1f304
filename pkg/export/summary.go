// Package export turns decoded records into plain summaries and writes them
// as YAML, JSON or MessagePack.
package export

import (
	"fmt"

	"github.com/ssargent/fwinfo/pkg/info"
)

// Summary is a format-neutral view of one record. Kind specific sections
// are nil for other kinds.
type Summary struct {
	Kind        string `yaml:"kind" json:"kind" msgpack:"kind"`
	GUID        string `yaml:"guid" json:"guid" msgpack:"guid"`
	Name        string `yaml:"name" json:"name" msgpack:"name"`
	Size        int    `yaml:"size" json:"size" msgpack:"size"`
	EncodedSize int    `yaml:"encoded_size" json:"encoded_size" msgpack:"encoded_size"`

	File       *FileSummary       `yaml:"file,omitempty" json:"file,omitempty" msgpack:"file,omitempty"`
	FileSystem *FileSystemSummary `yaml:"filesystem,omitempty" json:"filesystem,omitempty" msgpack:"filesystem,omitempty"`
}

// FileSummary carries the file information fields.
type FileSummary struct {
	FileSize         uint64 `yaml:"file_size" json:"file_size" msgpack:"file_size"`
	PhysicalSize     uint64 `yaml:"physical_size" json:"physical_size" msgpack:"physical_size"`
	CreateTime       string `yaml:"create_time" json:"create_time" msgpack:"create_time"`
	LastAccessTime   string `yaml:"last_access_time" json:"last_access_time" msgpack:"last_access_time"`
	ModificationTime string `yaml:"modification_time" json:"modification_time" msgpack:"modification_time"`
	Attribute        string `yaml:"attribute" json:"attribute" msgpack:"attribute"`
}

// FileSystemSummary carries the filesystem information fields.
type FileSystemSummary struct {
	ReadOnly   bool   `yaml:"read_only" json:"read_only" msgpack:"read_only"`
	VolumeSize uint64 `yaml:"volume_size" json:"volume_size" msgpack:"volume_size"`
	FreeSpace  uint64 `yaml:"free_space" json:"free_space" msgpack:"free_space"`
	BlockSize  uint32 `yaml:"block_size" json:"block_size" msgpack:"block_size"`
}

// Summarize copies the fields of rec into a Summary.
func Summarize(rec info.Record) Summary {
	s := Summary{
		Kind:        kindName(rec),
		GUID:        rec.GUID().String(),
		Name:        rec.Name().String(),
		Size:        rec.Len(),
		EncodedSize: rec.EncodedSize(),
	}

	switch r := rec.(type) {
	case *info.FileInfo:
		s.File = &FileSummary{
			FileSize:         r.FileSize(),
			PhysicalSize:     r.PhysicalSize(),
			CreateTime:       r.CreateTime().String(),
			LastAccessTime:   r.LastAccessTime().String(),
			ModificationTime: r.ModificationTime().String(),
			Attribute:        r.Attribute().String(),
		}
	case *info.FileSystemInfo:
		s.FileSystem = &FileSystemSummary{
			ReadOnly:   r.ReadOnly(),
			VolumeSize: r.VolumeSize(),
			FreeSpace:  r.FreeSpace(),
			BlockSize:  r.BlockSize(),
		}
	}
	return s
}

func kindName(rec info.Record) string {
	if k, err := info.LookupKind(rec.GUID()); err == nil {
		return k.Name
	}
	return "unknown"
}

// Marshal encodes s in format f.
func Marshal(s Summary, f Format) ([]byte, error) {
	c, err := CodecFor(f)
	if err != nil {
		return nil, err
	}
	data, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal %s summary: %w", f, err)
	}
	return data, nil
}

// Unmarshal decodes a summary written by Marshal.
func Unmarshal(data []byte, f Format) (Summary, error) {
	var s Summary
	c, err := CodecFor(f)
	if err != nil {
		return s, err
	}
	if err := c.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("unmarshal %s summary: %w", f, err)
	}
	return s, nil
}
