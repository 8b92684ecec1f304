package guid

// Configuration table entries published by firmware.
var (
	// ACPI points to the ACPI 1.0 RSDP.
	ACPI = FromValues(0xeb9d2d30, 0x2d88, 0x11d3, 0x9a16, 0x0090273fc14d)
	// ACPI2 points to the ACPI 2.0 RSDP.
	ACPI2 = FromValues(0x8868e871, 0xe4f1, 0x11d3, 0xbc22, 0x0080c73c8881)
	// SMBIOS points to the SMBIOS 1.0 table.
	SMBIOS = FromValues(0xeb9d2d31, 0x2d88, 0x11d3, 0x9a16, 0x0090273fc14d)
	// SMBIOS3 points to the SMBIOS 3.0 table.
	SMBIOS3 = FromValues(0xf2fd1544, 0x9794, 0x4a2c, 0x992e, 0xe5bbcf20e394)
	// PropertiesTable identifies the firmware properties table.
	PropertiesTable = FromValues(0x880aaca3, 0x4adc, 0x4a04, 0x9079, 0xb747340825e5)
	// HandOffBlockList identifies the pre-boot hand-off block list.
	HandOffBlockList = FromValues(0x7739f24c, 0x93d7, 0x11d4, 0x9a3a, 0x0090273fc14d)
	// MemoryTypeInformation records early boot memory ranges.
	MemoryTypeInformation = FromValues(0x4c19049f, 0x4137, 0x4dd3, 0x9c10, 0x8b97a83ffdfa)
	// MemoryStatusCodeRecord holds status codes from the pre-boot environment.
	MemoryStatusCodeRecord = FromValues(0x060cc026, 0x4c0d, 0x4dda, 0x8f41, 0x595fef00a502)
	// DXEServices identifies the driver execution environment services table.
	DXEServices = FromValues(0x05ad34ba, 0x6f02, 0x4214, 0x952e, 0x4da0398e2bb9)
	// LZMACompress identifies an LZMA-compressed filesystem.
	LZMACompress = FromValues(0xee4e5898, 0x3914, 0x4259, 0x9d6e, 0xdc7bd79403cf)
	// TianoCompress identifies a Tiano-compressed filesystem.
	TianoCompress = FromValues(0xa31280ad, 0x481e, 0x41b6, 0x95e8, 0x127f4c984779)
	// DebugImageInfo points to the debug image info table.
	DebugImageInfo = FromValues(0x49152e77, 0x1ada, 0x4764, 0xb7a2, 0x7afefed95e8b)
)

// Named pairs a GUID with a human readable name.
type Named struct {
	Name string
	GUID GUID
}

// ConfigTables lists the well-known configuration table GUIDs.
func ConfigTables() []Named {
	return []Named{
		{"acpi", ACPI},
		{"acpi2", ACPI2},
		{"smbios", SMBIOS},
		{"smbios3", SMBIOS3},
		{"properties-table", PropertiesTable},
		{"hand-off-block-list", HandOffBlockList},
		{"memory-type-information", MemoryTypeInformation},
		{"memory-status-code-record", MemoryStatusCodeRecord},
		{"dxe-services", DXEServices},
		{"lzma-compress", LZMACompress},
		{"tiano-compress", TianoCompress},
		{"debug-image-info", DebugImageInfo},
	}
}
