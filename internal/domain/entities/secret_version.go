package entities

import "time"

// SecretVersion is one version of a managed secret.
// Name is the full resource name: projects/P/secrets/S/versions/N.
type SecretVersion struct {
	Name       string
	State      string
	CreateTime time.Time
}

const SecretVersionStateDestroyed = "DESTROYED"

type PruneReport struct {
	Secret    string `json:"secret"`
	Kept      string `json:"kept,omitempty"`
	Destroyed int    `json:"destroyed"`
	Failed    int    `json:"failed"`
}
