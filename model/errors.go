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

package model

import (
	"errors"
	"fmt"
)

// InvalidConfigurationError is returned when a configuration record cannot be constructed from
// the supplied properties.
type InvalidConfigurationError struct {
	// Flavor is the name of the record being constructed, empty if the name itself is the problem.
	Flavor string

	// Property is the property name as written in the build file, e.g. "min_sdk_version".
	Property string

	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Flavor == "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Property, e.Reason)
	}
	return fmt.Sprintf("invalid configuration for %q: %s: %s", e.Flavor, e.Property, e.Reason)
}

func invalidConfigurationf(flavor, property, format string, args ...interface{}) error {
	return &InvalidConfigurationError{
		Flavor:   flavor,
		Property: property,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// IsInvalidConfiguration returns true if err, or any error it wraps, is an
// InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var invalid *InvalidConfigurationError
	return errors.As(err, &invalid)
}
