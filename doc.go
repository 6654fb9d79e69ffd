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

// Package nanocron implements a cron-style scheduler core with
// nanosecond-precision matching.
//
// The package is passive: apart from the Now and Registry.Tick
// conveniences it reads no wall clock, and it starts no timers and spawns
// no goroutines of its own. Callers supply the current Instant and
// decide when to invoke Execute; the Registry only decides which of the
// registered schedules match.
//
// Schedule expressions have exactly seven whitespace-separated fields:
//
//	nanosecond  second  minute  hour  day-of-month  month  day-of-week
//
// Example
//
//      package main
//
//      import (
//      	"fmt"
//
//      	"github.com/xgfone/nanocron"
//      )
//
//      func main() {
//      	reg := nanocron.New()
//      	defer reg.Destroy()
//
//      	reg.Add("0 * * * * * *", func(user any, at nanocron.Instant) {
//      		fmt.Println("fired at", at)
//      	}, nil)
//
//      	reg.Execute(nanocron.Instant{Sec: 1739788200})
//      }
//
package nanocron
