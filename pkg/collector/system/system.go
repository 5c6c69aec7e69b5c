// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package system

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unknown fills any identity field the host does not report.
const Unknown = "Unknown"

// Identity is the kernel identity as reported by uname(2).
type Identity struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// Collector reports the operating system and host identity.
type Collector struct {
	Family platform.Family

	// Uname returns the kernel identity. Not every OS has one.
	Uname func() (*Identity, error)

	// HostInfo fills fields that Uname cannot.
	HostInfo func(ctx context.Context) (*host.InfoStat, error)

	Getenv func(key string) string
}

// NewCollector returns a Collector wired to the live host.
func NewCollector(family platform.Family) *Collector {
	return &Collector{
		Family:   family,
		Uname:    uname,
		HostInfo: host.InfoWithContext,
		Getenv:   os.Getenv,
	}
}

// Collect never fails on missing primitives; unavailable fields degrade to
// Unknown. It only returns an error when ctx is done.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting platform identity", slog.String("family", c.Family.String()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pf := &facts.PlatformFacts{}

	if c.Uname != nil {
		id, err := c.Uname()
		if err != nil {
			slog.Debug("kernel identity unavailable", slog.String("error", err.Error()))
		} else {
			pf.System = id.Sysname
			pf.NodeName = id.Nodename
			pf.Release = id.Release
			pf.Version = id.Version
			pf.Machine = id.Machine
		}
	}

	if c.HostInfo != nil && (pf.System == "" || pf.NodeName == "" || pf.Release == "" || pf.Version == "" || pf.Machine == "") {
		info, err := c.HostInfo(ctx)
		if err != nil {
			slog.Debug("host info unavailable", slog.String("error", err.Error()))
		} else {
			fill(&pf.System, cases.Title(language.Und).String(info.OS))
			fill(&pf.NodeName, info.Hostname)
			fill(&pf.Release, info.KernelVersion)
			fill(&pf.Version, info.PlatformVersion)
			fill(&pf.Machine, info.KernelArch)
		}
	}

	pf.Processor = c.processor(pf.Machine)
	pf.Architecture = architecture(c.Family)

	for _, f := range []*string{&pf.System, &pf.NodeName, &pf.Release, &pf.Version, &pf.Machine, &pf.Processor} {
		fill(f, Unknown)
	}

	return pf, nil
}

func (c *Collector) processor(machine string) string {
	if c.Family == platform.FamilyWindows && c.Getenv != nil {
		if id := strings.TrimSpace(c.Getenv("PROCESSOR_IDENTIFIER")); id != "" {
			return id
		}
	}
	return machine
}

// architecture returns the pointer width and executable format of this
// build, e.g. "64bit ELF".
func architecture(family platform.Family) string {
	bits := strconv.Itoa(strconv.IntSize) + "bit"
	switch family {
	case platform.FamilyLinux:
		return fmt.Sprintf("%s ELF", bits)
	case platform.FamilyWindows:
		return fmt.Sprintf("%s WindowsPE", bits)
	default:
		return bits
	}
}

func fill(dst *string, v string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = strings.TrimSpace(v)
	}
}
