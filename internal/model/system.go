package model

// VersionInfo describes the running application and schema versions.
type VersionInfo struct {
	AppVersion string `json:"appVersion"`
	DBVersion  int64  `json:"dbVersion"`
}
