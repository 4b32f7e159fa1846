// Package version exposes build information for the binaries. The
// variables are set at link time:
//
//	go build -ldflags "-X github.com/aanand-mishra/employees-api/internal/version.Version=1.2.0" ./cmd/...
package version

import (
	goversion "github.com/caarlos0/go-version"
)

const website = "https://github.com/aanand-mishra/employees-api"

var (
	Version   = "1.0.0"
	Commit    = ""
	TreeState = ""
	Date      = ""
	BuiltBy   = ""
)

// Info returns the build information for the named application.
func Info(app, description string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(app, description, website),
		func(i *goversion.Info) {
			if Commit != "" {
				i.GitCommit = Commit
			}
			if Version != "" {
				i.GitVersion = Version
			}
			if TreeState != "" {
				i.GitTreeState = TreeState
			}
			if Date != "" {
				i.BuildDate = Date
			}
			if BuiltBy != "" {
				i.BuiltBy = BuiltBy
			}
		},
	)
}
