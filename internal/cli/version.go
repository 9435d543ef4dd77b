package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ech-workers/ech-client/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("  %s %s\n", render(styleBrand, "ech-client"), render(styleVersion, buildinfo.Version))
		fmt.Printf("    %s  %s\n", render(styleLabel, "Commit"), render(styleValue, buildinfo.CommitHash))
		fmt.Printf("    %s   %s\n", render(styleLabel, "Built"), render(styleValue, buildinfo.BuildDate))
		fmt.Printf("    %s %s\n", render(styleLabel, "OS/Arch"), render(styleValue, runtime.GOOS+"/"+runtime.GOARCH))
		fmt.Printf("    %s      %s\n", render(styleLabel, "Go"), render(styleValue, runtime.Version()))
	},
}
