// Copyright 2024 Google Inc. All rights reserved.
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

package flavorconfig

import (
	"fmt"
	"strconv"
)

// FutureApiLevelInt is the API level of an arbitrary future release, spelled "current" in build
// files.
const FutureApiLevelInt = 10000

// Codenames of finalized releases and the API levels they were finalized as.
var finalCodenames = map[string]int{
	"G":               9,
	"I":               14,
	"J":               16,
	"J-MR1":           17,
	"J-MR2":           18,
	"K":               19,
	"L":               21,
	"L-MR1":           22,
	"M":               23,
	"N":               24,
	"N-MR1":           25,
	"O":               26,
	"O-MR1":           27,
	"P":               28,
	"Q":               29,
	"R":               30,
	"S":               31,
	"S-V2":            32,
	"Tiramisu":        33,
	"UpsideDownCake":  34,
	"VanillaIceCream": 35,
}

// ApiLevelFromUser converts an API level as written in a build file to its number.
//
// "current" is FutureApiLevelInt. Finalized codenames are interpreted as their final API levels,
// so "R" is 30. Anything else must be a non-negative integer.
func ApiLevelFromUser(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("API level string must be non-empty")
	}

	if raw == "current" {
		return FutureApiLevelInt, nil
	}

	if level, ok := finalCodenames[raw]; ok {
		return level, nil
	}

	asInt, err := strconv.Atoi(raw)
	if err != nil || asInt < 0 {
		return 0, fmt.Errorf("%q could not be parsed as an integer and is not a recognized codename", raw)
	}
	return asInt, nil
}
