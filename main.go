package main

import (
	"fmt"
	"os"

	"github.com/thrasher-corp/gobacktest/config"
	"github.com/thrasher-corp/gobacktest/engine"
	"github.com/thrasher-corp/gobacktest/log"
	"github.com/urfave/cli/v2"
)

var (
	configPath string
	verbose    bool
)

func main() {
	app := cli.NewApp()
	app.Name = "gobacktest"
	app.Usage = "event driven backtesting of trading strategies against historical candle data"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       "config.json",
			Usage:       "the run config to load",
			Destination: &configPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "enables debug level output",
			Destination: &verbose,
		},
	}
	app.Action = runBacktest

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBacktest(_ *cli.Context) error {
	if verbose {
		log.GlobalLogLevel("INFO|WARN|DEBUG|ERROR")
	}

	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return fmt.Errorf("could not read config: %w", err)
	}
	cfg.PrintSetting()

	bt, err := engine.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("could not assemble backtest: %w", err)
	}
	if err = bt.Run(); err != nil {
		return fmt.Errorf("could not run backtest: %w", err)
	}

	results, err := bt.Statistic.CalculateAllResults(bt.Portfolio, bt.Datas)
	if err != nil {
		return fmt.Errorf("could not calculate results: %w", err)
	}
	bt.Statistic.PrintResults(results)
	return nil
}
