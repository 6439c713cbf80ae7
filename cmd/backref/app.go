// File: cmd/backref/app.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/momentics/splitvec/facade"
	"github.com/momentics/splitvec/rle"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML file overriding the runtime defaults",
	}
	initFlag = &cli.IntFlag{
		Name:  "init",
		Value: 600,
		Usage: "length of the generated prefix",
	}
	distanceFlag = &cli.IntFlag{
		Name:  "distance",
		Value: 256,
		Usage: "back-reference distance (fragment length)",
	}
	fillFlag = &cli.IntFlag{
		Name:  "fill",
		Value: 3333,
		Usage: "elements appended per round",
	}
	roundsFlag = &cli.IntFlag{
		Name:  "rounds",
		Value: 1,
		Usage: "number of fills to run",
	}
	strategyFlag = &cli.StringFlag{
		Name:  "strategy",
		Value: rle.Chunked.String(),
		Usage: "naive, push or chunked",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "override the configured log level",
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "log in JSON",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "backref",
		Usage: "expand periodic back-references through split views",
		Flags: []cli.Flag{
			configFlag, initFlag, distanceFlag, fillFlag, roundsFlag,
			strategyFlag, logLevelFlag, jsonFlag,
		},
		Action: run,
	}
}

func loadConfig(c *cli.Context) (*facade.Config, error) {
	cfg := facade.DefaultConfig()
	if path := c.String(configFlag.Name); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	if c.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = c.String(logLevelFlag.Name)
	}
	if c.IsSet(jsonFlag.Name) {
		cfg.LogJSON = c.Bool(jsonFlag.Name)
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	rt, err := facade.New(cfg, nil)
	if err != nil {
		return err
	}
	strategy, err := rle.ParseStrategy(c.String(strategyFlag.Name))
	if err != nil {
		return err
	}
	initLen, distance, fill, rounds := c.Int(initFlag.Name), c.Int(distanceFlag.Name), c.Int(fillFlag.Name), c.Int(roundsFlag.Name)

	host := facade.NewVec[byte](rt)
	prefix := make([]byte, initLen)
	for i := range prefix {
		prefix[i] = byte(i)
	}
	if err := host.Append(prefix...); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < rounds; i++ {
		if err := rle.Fill[byte](host, distance, fill, strategy, rt.SplitOptions()...); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	if at, ok := firstAperiodic(host.Items(), distance); !ok {
		return fmt.Errorf("output not periodic at index %d", at)
	}
	rt.Logger().Infow("fill complete",
		"strategy", strategy.String(),
		"rounds", rounds,
		"len", host.Len(),
		"elapsed", elapsed,
		"per_round", elapsed/time.Duration(max(rounds, 1)),
	)
	rt.Logger().Debugw("state", "dump", rt.DumpState())
	fmt.Fprintf(c.App.Writer, "%s: %d elements in %s\n", strategy, host.Len(), elapsed)
	return nil
}

// firstAperiodic reports the first i where res[i] != res[i+period].
func firstAperiodic(res []byte, period int) (int, bool) {
	for i := 0; i+period < len(res); i++ {
		if res[i] != res[i+period] {
			return i, false
		}
	}
	return 0, true
}
