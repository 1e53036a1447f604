package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"flist/config"
	"flist/demo"
	"flist/logger"
)

var banner = `
   ______ ___      __
  / __/ // (_)____/ /_
 / /_/ // / / ___/ __/
/ __/ // / (__  ) /_
/_/ /_//_/_/____/\__/
`

var (
	configFile = flag.String("config", "flist.yaml", "config file, ignored when it does not exist")
	runFlag    = flag.String("run", "", "comma separated section patterns, overrides Sections in config")
	listFlag   = flag.Bool("list", false, "print section names and exit")
)

func fileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}

func splitPatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func main() {
	flag.Parse()

	if *listFlag {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
		return
	}

	if fileExists(*configFile) {
		if err := config.SetupConfig(*configFile); err != nil {
			logger.Fatal(err)
		}
	}
	// 演示输出占用stdout，日志写到stderr
	if config.Config.LogToFile {
		if err := logger.Setup(&config.Config.Log); err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.SetDefault(logger.NewWriterLogger(os.Stderr, logger.ParseLevel(config.Config.Log.Level)))
	}
	defer logger.DefaultLogger.Close()

	print(banner)
	logger.Infof("config: %s", config.Config.ConfigFilePath)
	_, err := demo.NewRunner(os.Stdout, config.Config).Run(splitPatterns(*runFlag)...)
	if err != nil {
		logger.Error(err)
	}
}
