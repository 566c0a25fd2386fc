//go:build noexport

package sys

import "github.com/Latias94/asset-importer/vfs"

func ExportFile(sc *Scene, formatID, path string, preprocessing uint32, fs vfs.FileSystem, props []Property) error {
	return ErrExportDisabled
}

func ExportBlob(sc *Scene, formatID string, preprocessing uint32, props []Property) (*Blob, error) {
	return nil, ErrExportDisabled
}

func ExportFormats() []ExportFormat {
	return nil
}
