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
	"strings"
	"sync"
	"time"

	"github.com/xgfone/nanocron"
	"github.com/xgfone/ship/v3"
)

// jobEntry records the admin-API-visible identity of a registered schedule
// alongside the *nanocron.Schedule handle needed to remove it later.
type jobEntry struct {
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
	Runner   string `json:"runner"`
	handle   *nanocron.Schedule
}

type adminHandler struct {
	reg     *nanocron.Registry
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]*jobEntry
}

func newAdminHandler(reg *nanocron.Registry, timeout time.Duration) *adminHandler {
	return &adminHandler{reg: reg, timeout: timeout, jobs: make(map[string]*jobEntry)}
}

type addJobRequest struct {
	Name     string        `json:"name"`
	Schedule string        `json:"schedule"`
	Runner   string        `json:"runner"`
	Timeout  time.Duration `json:"timeout"`
}

func (h *adminHandler) AddJob(ctx *ship.Context) error {
	var req addJobRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(400, err.Error())
	}
	if req.Name == "" {
		return ctx.String(400, "missing name")
	}
	if !strings.HasPrefix(req.Runner, "shell ") {
		return ctx.String(400, "runner must be of the form 'shell <command>'")
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = h.timeout
	}
	cmd := strings.TrimSpace(strings.TrimPrefix(req.Runner, "shell "))
	if cmd == "" {
		return ctx.String(400, "empty shell command")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.jobs[req.Name]; exists {
		return ctx.NoContent(409)
	}

	cb := newShellCallback(req.Name, cmd, timeout)
	handle, err := h.reg.Add(req.Schedule, cb, req.Name)
	if err != nil {
		return ctx.String(400, err.Error())
	}

	h.jobs[req.Name] = &jobEntry{Name: req.Name, Schedule: req.Schedule, Runner: req.Runner, handle: handle}
	return ctx.NoContent(201)
}

func (h *adminHandler) DeleteJob(ctx *ship.Context) error {
	name := ctx.Param("name")

	h.mu.Lock()
	defer h.mu.Unlock()
	job, ok := h.jobs[name]
	if !ok {
		return ctx.NoContent(404)
	}
	if err := h.reg.Remove(job.handle); err != nil {
		return ctx.String(500, err.Error())
	}
	delete(h.jobs, name)
	return ctx.NoContent(204)
}

func (h *adminHandler) GetJobs(ctx *ship.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]jobEntry, 0, len(h.jobs))
	for _, job := range h.jobs {
		out = append(out, jobEntry{Name: job.Name, Schedule: job.Schedule, Runner: job.Runner})
	}
	return ctx.JSON(200, map[string]any{"jobs": out})
}

func (h *adminHandler) GetNextTrigger(ctx *ship.Context) error {
	next, ok := h.reg.NextTrigger(nanocron.Now())
	if !ok {
		return ctx.NoContent(404)
	}
	return ctx.JSON(200, map[string]any{"sec": next.Sec, "nsec": next.Nsec})
}

func newRouter(h *adminHandler) *ship.Ship {
	sh := ship.Default()
	sh.Route("/jobs").POST(h.AddJob).GET(h.GetJobs)
	sh.Route("/jobs/:name").DELETE(h.DeleteJob)
	sh.Route("/next").GET(h.GetNextTrigger)
	return sh
}
