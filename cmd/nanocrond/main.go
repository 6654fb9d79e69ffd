// Copyright 2019 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nanocrond runs a nanocron.Registry behind an HTTP admin API,
// driving it forward with a ticker loop that calls Registry.Tick, since the
// registry itself starts no timers or goroutines.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/xgfone/go-tools/v7/lifecycle"
	"github.com/xgfone/klog/v3"
	"github.com/xgfone/nanocron"
	"github.com/xgfone/nanocron/cmd/internal/logging"
)

var version = "dev"

func main() {
	app := cli.NewApp()
	app.Version = version
	app.Usage = "a nanosecond-precision crontab daemon"
	app.Commands = []*cli.Command{runCommand()}
	if err := app.Run(os.Args); err != nil {
		klog.Ef(err, "the program exits")
	}
	lifecycle.Stop()
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the nanocrond daemon",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c.Args().Slice())
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.LogLevel, cfg.LogFile); err != nil {
				return err
			}

			reg := nanocron.New()
			lifecycle.Register(func() { reg.Destroy() })

			if cfg.UTCOffset != 0 {
				if err := reg.SetOffset(cfg.UTCOffset); err != nil {
					return err
				}
			}

			handler := newAdminHandler(reg, 30*time.Second)
			sh := newRouter(handler)

			go func() {
				if err := sh.Start(cfg.Listen).Wait(); err != nil {
					klog.Ef(err, "admin server stopped")
				}
			}()
			lifecycle.Register(func() { sh.Stop() })

			tickPeriod := cfg.TickPeriod
			if tickPeriod <= 0 {
				tickPeriod = time.Second
			}
			ticker := time.NewTicker(tickPeriod)
			defer ticker.Stop()

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case <-ticker.C:
					reg.Tick()
				case <-sigs:
					return nil
				}
			}
		},
	}
}
