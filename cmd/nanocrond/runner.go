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
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/xgfone/klog/v3"
	"github.com/xgfone/nanocron"
)

// newShellCallback builds a nanocron.Callback that runs cmd in a shell each
// time the schedule fires. The registry's Execute caller is responsible for
// giving the callback a bounded amount of time to start; newShellCallback
// itself enforces timeout as the upper bound the command may run for.
func newShellCallback(name, cmd string, timeout time.Duration) nanocron.Callback {
	return func(user any, at nanocron.Instant) {
		ctx := context.Background()
		var cancel context.CancelFunc
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c := exec.CommandContext(ctx, "/bin/sh", "-c", cmd)
		var output, errput bytes.Buffer
		c.Stdout = &output
		c.Stderr = &errput

		log := klog.K("job", name).K("sec", at.Sec).K("nsec", at.Nsec)
		if err := c.Run(); err != nil {
			if stderr := errput.Bytes(); len(stderr) > 0 {
				log.K("stderr", string(stderr)).E(err).Errorf("job failed")
			} else {
				log.E(err).Errorf("job failed")
			}
			return
		}
		log.Infof("job finished")
	}
}
