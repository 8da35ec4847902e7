package pack

import (
	"fmt"
	"strings"

	"howett.net/plist"
)

// currentVersionRecord is the .xccurrentversion sidecar payload. The
// external tool stores the current version's directory name, including
// the .xcdatamodel suffix, under this exact key.
type currentVersionRecord struct {
	CurrentVersionName string `plist:"_XCCurrentVersionName"`
}

// encodeSidecar renders the sidecar plist naming the current version.
func encodeSidecar(versionName string) ([]byte, error) {
	record := currentVersionRecord{CurrentVersionName: versionName + VersionExt}
	data, err := plist.MarshalIndent(record, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("serializing current version marker: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeSidecar extracts the current version name from sidecar plist
// bytes, stripping the .xcdatamodel suffix.
func decodeSidecar(data []byte) (string, error) {
	var record currentVersionRecord
	if _, err := plist.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("parsing current version marker: %w", err)
	}
	return strings.TrimSuffix(record.CurrentVersionName, VersionExt), nil
}
