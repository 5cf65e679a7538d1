// Copyright (c) 2025, PtyRAD authors.  All rights reserved.
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

package logging

import (
	"os"
	"strconv"
)

// rankEnvVars are checked in order by the environment rank provider. These
// are set by the launchers used for multi-process reconstruction runs.
var rankEnvVars = []string{
	"SLURM_PROCID",
	"OMPI_COMM_WORLD_RANK",
	"PMI_RANK",
}

// RankProvider reports the distributed rank of the current process. Rank 0
// is the designated primary process responsible for user-facing output.
type RankProvider interface {
	Rank() int
}

// RankProviderFunc adapts a function to the RankProvider interface.
type RankProviderFunc func() int

// Rank implements RankProvider.
func (f RankProviderFunc) Rank() int {
	return f()
}

// EnvRank returns a RankProvider that reads the rank from the job launcher
// environment. A process with none of the rank variables set (a plain
// single-process run) reports rank 0.
func EnvRank() RankProvider {
	return RankProviderFunc(func() int {
		for _, name := range rankEnvVars {
			if v, ok := os.LookupEnv(name); ok {
				if rank, err := strconv.Atoi(v); err == nil {
					return rank
				}
			}
		}
		return 0
	})
}
