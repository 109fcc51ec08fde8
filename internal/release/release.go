// Package release knows where the external tools vmm depends on are
// published and can query GitHub for the newest ViolaCLI release.
package release

import (
	"fmt"

	latest "github.com/tcnksm/go-latest"
)

const (
	violaOwner = "Tiniifan"
	violaRepo  = "ViolaCLI"

	// ViolaReleasesURL points at the ViolaCLI release downloads.
	ViolaReleasesURL = "https://github.com/" + violaOwner + "/" + violaRepo + "/releases/latest"

	// CfgBinNotesURL documents how to obtain a pristine cpk_list.cfg.bin
	// from an unmodified game install.
	CfgBinNotesURL = "https://github.com/" + violaOwner + "/" + violaRepo + "/wiki/Pristine-cpk_list.cfg.bin"
)

// LatestViola queries GitHub for the newest ViolaCLI release tag.
func LatestViola() (string, error) {
	githubTag := &latest.GithubTag{
		Owner:      violaOwner,
		Repository: violaRepo,
	}
	res, err := latest.Check(githubTag, "0.0.0")
	if err != nil {
		return "", fmt.Errorf("checking latest ViolaCLI release: %w", err)
	}
	return res.Current, nil
}
