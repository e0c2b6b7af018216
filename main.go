package main

import (
	"os"
	"runtime/debug"

	"github.com/ytget/yt-thumbnails/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(buildVersionInfo()))
}

// buildVersionInfo fills commit and date from VCS build settings for dev builds
func buildVersionInfo() cli.VersionInfo {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "none" {
						commit = setting.Value
						if len(commit) > 7 {
							commit = commit[:7]
						}
					}
				case "vcs.time":
					if date == "unknown" {
						date = setting.Value
					}
				}
			}
		}
	}

	return cli.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
