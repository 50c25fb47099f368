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
	"math"

	"github.com/google/blueprint/proptools"
)

// Unset is returned by the integer accessors of ProductFlavor when the flavor does not set the
// value. Negative values are rejected at construction, so a set value never equals Unset.
const Unset = -1

// IsSet returns true if v is a value returned by an integer accessor for a property that the
// flavor sets.
func IsSet(v int) bool {
	return v != Unset
}

// FlavorProperties are the properties of a product flavor as declared in a build file. A nil
// pointer means the flavor does not override that value.
type FlavorProperties struct {
	BaseConfigProperties

	// Overrides the application package name.
	Package_name *string

	// Overrides the version code.
	Version_code *int64

	// Overrides the human readable version name.
	Version_name *string

	// Overrides the minimum supported API level.
	Min_sdk_version *int64

	// Overrides the targeted API level.
	Target_sdk_version *int64

	// Overrides the renderscript target API level.
	Renderscript_target_api *int64

	// Overrides the package name of the test application.
	Test_package_name *string

	// Fully qualified class name of the test instrumentation runner.
	Test_instrumentation_runner *string
}

// ProductFlavor is the configuration of a single product flavor. It holds only the values set on
// this flavor; the final values used by a build variant come from merging it with the defaults,
// the build type and any other flavors of the variant, which happens elsewhere.
//
// It does not include the sources or the dependencies of the flavor.
//
// A ProductFlavor is immutable and safe for concurrent use.
type ProductFlavor struct {
	BaseConfig

	packageName               *string
	versionCode               *int64
	versionName               *string
	minSdkVersion             *int64
	targetSdkVersion          *int64
	renderscriptTargetApi     *int64
	testPackageName           *string
	testInstrumentationRunner *string
}

// NewProductFlavor validates props and returns the flavor they describe. The returned flavor
// shares no memory with props.
func NewProductFlavor(props FlavorProperties) (*ProductFlavor, error) {
	base, err := newBaseConfig(props.BaseConfigProperties)
	if err != nil {
		return nil, err
	}
	name := base.name

	f := &ProductFlavor{
		BaseConfig:                base,
		packageName:               copyStringPtr(props.Package_name),
		versionName:               copyStringPtr(props.Version_name),
		testPackageName:           copyStringPtr(props.Test_package_name),
		testInstrumentationRunner: copyStringPtr(props.Test_instrumentation_runner),
	}

	ints := []struct {
		property string
		from     *int64
		to       **int64
	}{
		{"version_code", props.Version_code, &f.versionCode},
		{"min_sdk_version", props.Min_sdk_version, &f.minSdkVersion},
		{"target_sdk_version", props.Target_sdk_version, &f.targetSdkVersion},
		{"renderscript_target_api", props.Renderscript_target_api, &f.renderscriptTargetApi},
	}
	for _, i := range ints {
		if i.from == nil {
			continue
		}
		if *i.from < 0 {
			return nil, invalidConfigurationf(name, i.property, "must not be negative, got %d", *i.from)
		}
		if *i.from > math.MaxInt32 {
			return nil, invalidConfigurationf(name, i.property, "%d is out of range", *i.from)
		}
		*i.to = proptools.Int64Ptr(*i.from)
	}

	return f, nil
}

// PackageName returns the package name set on this flavor, and false if the flavor inherits it.
func (f *ProductFlavor) PackageName() (string, bool) {
	return optionalString(f.packageName)
}

// VersionCode returns the version code set on this flavor, or Unset.
func (f *ProductFlavor) VersionCode() int {
	return proptools.IntDefault(f.versionCode, Unset)
}

// VersionName returns the version name set on this flavor. Any version name suffix comes from
// the build type and is not included.
func (f *ProductFlavor) VersionName() (string, bool) {
	return optionalString(f.versionName)
}

// MinSdkVersion returns the minimum API level set on this flavor, or Unset.
func (f *ProductFlavor) MinSdkVersion() int {
	return proptools.IntDefault(f.minSdkVersion, Unset)
}

// TargetSdkVersion returns the target API level set on this flavor, or Unset.
func (f *ProductFlavor) TargetSdkVersion() int {
	return proptools.IntDefault(f.targetSdkVersion, Unset)
}

// RenderscriptTargetApi returns the renderscript target API level set on this flavor, or Unset.
func (f *ProductFlavor) RenderscriptTargetApi() int {
	return proptools.IntDefault(f.renderscriptTargetApi, Unset)
}

func (f *ProductFlavor) TestPackageName() (string, bool) {
	return optionalString(f.testPackageName)
}

func (f *ProductFlavor) TestInstrumentationRunner() (string, bool) {
	return optionalString(f.testInstrumentationRunner)
}

// Properties returns properties that construct an identical flavor when passed to
// NewProductFlavor.
func (f *ProductFlavor) Properties() FlavorProperties {
	props := FlavorProperties{
		BaseConfigProperties: BaseConfigProperties{
			Name:                    f.name,
			Build_config_fields:     formatClassFields(f.buildConfigFields),
			Res_values:              formatClassFields(f.resValues),
			Proguard_files:          copyStrings(f.proguardFiles),
			Consumer_proguard_files: copyStrings(f.consumerProguardFiles),
		},
		Package_name:                copyStringPtr(f.packageName),
		Version_name:                copyStringPtr(f.versionName),
		Test_package_name:           copyStringPtr(f.testPackageName),
		Test_instrumentation_runner: copyStringPtr(f.testInstrumentationRunner),
		Version_code:                copyInt64Ptr(f.versionCode),
		Min_sdk_version:             copyInt64Ptr(f.minSdkVersion),
		Target_sdk_version:          copyInt64Ptr(f.targetSdkVersion),
		Renderscript_target_api:     copyInt64Ptr(f.renderscriptTargetApi),
	}
	for _, k := range f.ManifestPlaceholderKeys() {
		props.Manifest_placeholders = append(props.Manifest_placeholders, k+"="+f.manifestPlaceholders[k])
	}
	if f.multiDexEnabled != nil {
		props.Multi_dex_enabled = proptools.BoolPtr(*f.multiDexEnabled)
	}
	return props
}

func formatClassFields(fields []ClassField) []string {
	if fields == nil {
		return nil
	}
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, f.Type+":"+f.Name+":"+f.Value)
	}
	return ret
}

func optionalString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return proptools.StringPtr(*s)
}

func copyInt64Ptr(i *int64) *int64 {
	if i == nil {
		return nil
	}
	return proptools.Int64Ptr(*i)
}
