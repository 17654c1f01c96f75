package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tanq16/scooper/internal/output"
)

type BatchFile struct {
	Links []string `yaml:"links"`
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Download every link listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading YAML file: %v\n", err)
				os.Exit(1)
			}
			var batch BatchFile
			if err := yaml.Unmarshal(data, &batch); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing YAML file: %v\n", err)
				os.Exit(1)
			}
			var urls []string
			for _, link := range batch.Links {
				if strings.TrimSpace(link) != "" {
					urls = append(urls, link)
				}
			}
			if len(urls) == 0 {
				output.PrintWarning("No links found in the batch file")
				return
			}
			runDownloads(urls)
		},
	}
	return cmd
}
