package assets

import (
	_ "embed"
)

//go:embed metainfo.xml
var metaInfo string

// GetMetaInfo returns the AppStream metainfo shipped with the application.
func GetMetaInfo() string {
	return metaInfo
}
