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

package main

import (
	"time"

	"github.com/xgfone/gconf/v6"
)

// config holds the settings nanocrond reads from flags, environment
// variables and an optional config file, all wired through gconf.
type config struct {
	Listen     string
	LogLevel   string
	LogFile    string
	TickPeriod time.Duration
	UTCOffset  int
}

func loadConfig(args []string) (config, error) {
	conf := gconf.New()
	conf.RegisterOpts(
		gconf.StrOpt("listen", "the address the admin HTTP API listens on").D(":8113"),
		gconf.StrOpt("log-level", "the logging level: debug, info, warn, error").D("info"),
		gconf.StrOpt("log-file", "rotate logs into this file instead of stderr").D(""),
		gconf.DurationOpt("tick-period", "how often to call Tick on the registry").D(time.Second),
		gconf.IntOpt("utc-offset", "the UTC offset in minutes applied to day/hour/minute matching").D(0),
	)

	if err := conf.Parse(args); err != nil {
		return config{}, err
	}

	return config{
		Listen:     conf.GetString("listen"),
		LogLevel:   conf.GetString("log-level"),
		LogFile:    conf.GetString("log-file"),
		TickPeriod: conf.GetDuration("tick-period"),
		UTCOffset:  conf.GetInt("utc-offset"),
	}, nil
}
