package domain

import "time"

// BuildRecord describes an archive produced by a successful build.
type BuildRecord struct {
	PackageHash string    `json:"package_hash,omitzero"`
	Name        string    `json:"name,omitzero"`
	Version     string    `json:"version,omitzero"`
	Archive     string    `json:"archive,omitzero"`
	Checksum    string    `json:"checksum,omitzero"`
	SessionID   string    `json:"session_id,omitzero"`
	Revision    string    `json:"revision,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
