package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/scooper/internal/output"
	"github.com/tanq16/scooper/internal/utils"
)

var (
	outputDir  string
	urlFile    string
	threads    int
	retries    int
	headers    []string
	proxyURL   string
	logFile    string
	noColor    bool
	types      string
	minSizeStr string
	maxSizeStr string
	randomUA   bool
	mobileUA   bool
	debug      bool
)

var ScooperVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "scooper [URLS...]",
	Short:   "Scooper is a flexible multithreaded downloader for JS/CSS/images/binaries",
	Version: ScooperVersion,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		urls := append([]string{}, args...)
		if urlFile != "" {
			fileURLs, err := utils.ReadURLFile(urlFile)
			if err != nil {
				// Unreadable list file reduces the URL set, it does not abort
				output.PrintError(fmt.Sprintf("Failed to read file '%s': %v", urlFile, err))
			} else {
				urls = append(urls, fileURLs...)
			}
		}
		if len(urls) == 0 {
			output.PrintWarning("No URLs provided. Pass URLs as arguments or use --file.")
			return
		}
		runDownloads(urls)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildPolicy validates flags and assembles the shared run policy.
func buildPolicy() (*utils.DownloadPolicy, error) {
	if randomUA && mobileUA {
		return nil, errors.New("cannot use --random-useragent and --mobile-useragent at the same time")
	}
	minSize, err := utils.ParseSize(minSizeStr)
	if err != nil {
		return nil, err
	}
	maxSize, err := utils.ParseSize(maxSizeStr)
	if err != nil {
		return nil, err
	}
	mode := utils.UAModeNone
	if randomUA {
		mode = utils.UAModeDesktop
	} else if mobileUA {
		mode = utils.UAModeMobile
	}
	return &utils.DownloadPolicy{
		Headers:       utils.ParseHeaderArgs(headers),
		ProxyURL:      proxyURL,
		Threads:       max(threads, 1),
		Retries:       max(retries, 1),
		AllowedTypes:  utils.ParseTypes(types),
		MinSize:       minSize,
		MaxSize:       maxSize,
		UserAgentMode: mode,
		OutputDir:     outputDir,
	}, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&outputDir, "output", "o", utils.DefaultOutputDir, "Directory to save downloaded files")
	pf.IntVarP(&threads, "threads", "t", utils.DefaultThreads, "Number of parallel download threads")
	pf.IntVar(&retries, "retries", utils.DefaultRetries, "Number of attempts per failing download")
	pf.StringArrayVarP(&headers, "header", "H", []string{}, "Custom header (like 'Cookie: foo=bar'); can be specified multiple times")
	pf.StringVarP(&proxyURL, "proxy", "x", "", "Proxy server (e.g., http://127.0.0.1:8080)")
	pf.StringVar(&logFile, "log-file", "", "Path to log file (default: logs/scooper_TIMESTAMP.log)")
	pf.StringVar(&types, "types", utils.DefaultTypes, "Comma-separated list of allowed extensions (e.g., js,css,png), or '*' to allow all")
	pf.StringVar(&minSizeStr, "min-size", "", "Minimum file size to keep (e.g., 10KB, 1MB)")
	pf.StringVar(&maxSizeStr, "max-size", "", "Maximum file size to keep (e.g., 5MB, 500KB)")
	pf.BoolVar(&randomUA, "random-useragent", false, "Use a random desktop User-Agent per attempt")
	pf.BoolVar(&mobileUA, "mobile-useragent", false, "Use a random mobile User-Agent per attempt")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&urlFile, "file", "f", "", "Read URLs from a text file (one per line)")
	rootCmd.AddCommand(newBatchCmd())
}
