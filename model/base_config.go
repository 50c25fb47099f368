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
	"regexp"
	"sort"
	"strings"

	"github.com/google/blueprint/proptools"
)

var nameRegexp = regexp.MustCompile("^[A-Za-z][A-Za-z0-9_]*$")

// BaseConfigProperties are the properties shared by every configuration record that can be
// declared in a build file.
type BaseConfigProperties struct {
	// Name of the record. Required, and used as part of the build variant names so it must
	// start with a letter and contain only letters, digits and underscores.
	Name string

	// Fields to generate in the BuildConfig class, each in the form "type:name:value".
	// The value may itself contain ':'.
	Build_config_fields []string

	// Generated resource values, each in the form "type:name:value".
	Res_values []string

	// ProGuard rule files applied when building this configuration.
	Proguard_files []string

	// ProGuard rule files packaged for consumers of a library built with this configuration.
	Consumer_proguard_files []string

	// Manifest placeholder substitutions, each in the form "key=value".
	Manifest_placeholders []string

	// Whether multidex is enabled. Unset means no override.
	Multi_dex_enabled *bool
}

// ClassField is one generated constant, either a BuildConfig field or a resource value.
type ClassField struct {
	Type  string
	Name  string
	Value string
}

// BaseConfig holds the values common to all configuration records. Like the records that embed
// it, it is immutable once constructed and every accessor returns a copy.
type BaseConfig struct {
	name                  string
	buildConfigFields     []ClassField
	resValues             []ClassField
	proguardFiles         []string
	consumerProguardFiles []string
	manifestPlaceholders  map[string]string
	multiDexEnabled       *bool
}

func newBaseConfig(props BaseConfigProperties) (BaseConfig, error) {
	if props.Name == "" {
		return BaseConfig{}, invalidConfigurationf("", "name", "must be set")
	}
	if !nameRegexp.MatchString(props.Name) {
		return BaseConfig{}, invalidConfigurationf("", "name",
			"%q must start with a letter and contain only letters, digits and underscores", props.Name)
	}

	name := props.Name
	buildConfigFields, err := parseClassFields(name, "build_config_fields", props.Build_config_fields)
	if err != nil {
		return BaseConfig{}, err
	}
	resValues, err := parseClassFields(name, "res_values", props.Res_values)
	if err != nil {
		return BaseConfig{}, err
	}
	placeholders, err := parsePlaceholders(name, props.Manifest_placeholders)
	if err != nil {
		return BaseConfig{}, err
	}

	b := BaseConfig{
		name:                  name,
		buildConfigFields:     buildConfigFields,
		resValues:             resValues,
		proguardFiles:         copyStrings(props.Proguard_files),
		consumerProguardFiles: copyStrings(props.Consumer_proguard_files),
		manifestPlaceholders:  placeholders,
	}
	if props.Multi_dex_enabled != nil {
		b.multiDexEnabled = proptools.BoolPtr(*props.Multi_dex_enabled)
	}
	return b, nil
}

func parseClassFields(flavor, property string, raw []string) ([]ClassField, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(raw))
	fields := make([]ClassField, 0, len(raw))
	for _, s := range raw {
		parts := strings.SplitN(s, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, invalidConfigurationf(flavor, property,
				"%q is not in the form \"type:name:value\"", s)
		}
		if seen[parts[1]] {
			return nil, invalidConfigurationf(flavor, property, "duplicate field %q", parts[1])
		}
		seen[parts[1]] = true
		fields = append(fields, ClassField{Type: parts[0], Name: parts[1], Value: parts[2]})
	}
	return fields, nil
}

func parsePlaceholders(flavor string, raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ret := make(map[string]string, len(raw))
	for _, s := range raw {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, invalidConfigurationf(flavor, "manifest_placeholders",
				"%q is not in the form \"key=value\"", s)
		}
		if _, exists := ret[key]; exists {
			return nil, invalidConfigurationf(flavor, "manifest_placeholders", "duplicate key %q", key)
		}
		ret[key] = value
	}
	return ret, nil
}

// Name returns the name of the record. It is never empty.
func (b *BaseConfig) Name() string {
	return b.name
}

// BuildConfigFields returns the BuildConfig fields declared directly on this record, in
// declaration order.
func (b *BaseConfig) BuildConfigFields() []ClassField {
	return copyClassFields(b.buildConfigFields)
}

// ResValues returns the generated resource values declared directly on this record, in
// declaration order.
func (b *BaseConfig) ResValues() []ClassField {
	return copyClassFields(b.resValues)
}

func (b *BaseConfig) ProguardFiles() []string {
	return copyStrings(b.proguardFiles)
}

func (b *BaseConfig) ConsumerProguardFiles() []string {
	return copyStrings(b.consumerProguardFiles)
}

// ManifestPlaceholders returns a copy of the placeholder map. The map is nil if no placeholders
// were declared.
func (b *BaseConfig) ManifestPlaceholders() map[string]string {
	if b.manifestPlaceholders == nil {
		return nil
	}
	ret := make(map[string]string, len(b.manifestPlaceholders))
	for k, v := range b.manifestPlaceholders {
		ret[k] = v
	}
	return ret
}

// ManifestPlaceholderKeys returns the placeholder keys in sorted order.
func (b *BaseConfig) ManifestPlaceholderKeys() []string {
	keys := make([]string, 0, len(b.manifestPlaceholders))
	for k := range b.manifestPlaceholders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MultiDexEnabled returns the multidex override and whether one was set.
func (b *BaseConfig) MultiDexEnabled() (bool, bool) {
	if b.multiDexEnabled == nil {
		return false, false
	}
	return *b.multiDexEnabled, true
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyClassFields(f []ClassField) []ClassField {
	if f == nil {
		return nil
	}
	return append([]ClassField(nil), f...)
}
