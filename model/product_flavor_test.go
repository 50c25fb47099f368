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
	"fmt"
	"sync"
	"testing"

	"github.com/google/blueprint/proptools"
)

func fullFlavorProperties() FlavorProperties {
	return FlavorProperties{
		BaseConfigProperties: BaseConfigProperties{
			Name:                    "paid",
			Build_config_fields:     []string{"boolean:IS_PAID:true", "String:URL:\"https://example.com\""},
			Res_values:              []string{"string:app_name:Paid"},
			Proguard_files:          []string{"proguard-paid.pro"},
			Consumer_proguard_files: []string{"consumer-paid.pro"},
			Manifest_placeholders:   []string{"scheme=paid", "host=example.com"},
			Multi_dex_enabled:       proptools.BoolPtr(true),
		},
		Package_name:                proptools.StringPtr("com.example.paid"),
		Version_code:                proptools.Int64Ptr(42),
		Version_name:                proptools.StringPtr("4.2"),
		Min_sdk_version:             proptools.Int64Ptr(15),
		Target_sdk_version:          proptools.Int64Ptr(34),
		Renderscript_target_api:     proptools.Int64Ptr(18),
		Test_package_name:           proptools.StringPtr("com.example.paid.test"),
		Test_instrumentation_runner: proptools.StringPtr("androidx.test.runner.AndroidJUnitRunner"),
	}
}

func TestProductFlavorFreeScenario(t *testing.T) {
	f, err := NewProductFlavor(FlavorProperties{
		BaseConfigProperties: BaseConfigProperties{Name: "free"},
		Version_code:         proptools.Int64Ptr(3),
		Min_sdk_version:      proptools.Int64Ptr(21),
		Target_sdk_version:   proptools.Int64Ptr(30),
	})
	if err != nil {
		t.Fatal(err)
	}

	AssertStringEquals(t, "Name", "free", f.Name())
	packageName, ok := f.PackageName()
	AssertOptionalStringEquals(t, "PackageName", nil, packageName, ok)
	AssertIntEquals(t, "VersionCode", 3, f.VersionCode())
	AssertIntEquals(t, "MinSdkVersion", 21, f.MinSdkVersion())
	AssertIntEquals(t, "TargetSdkVersion", 30, f.TargetSdkVersion())
	AssertIntEquals(t, "RenderscriptTargetApi", Unset, f.RenderscriptTargetApi())
	runner, ok := f.TestInstrumentationRunner()
	AssertOptionalStringEquals(t, "TestInstrumentationRunner", nil, runner, ok)
	testPackageName, ok := f.TestPackageName()
	AssertOptionalStringEquals(t, "TestPackageName", nil, testPackageName, ok)
	versionName, ok := f.VersionName()
	AssertOptionalStringEquals(t, "VersionName", nil, versionName, ok)
}

func TestProductFlavorRoundTrip(t *testing.T) {
	props := fullFlavorProperties()
	f, err := NewProductFlavor(props)
	if err != nil {
		t.Fatal(err)
	}

	AssertStringEquals(t, "Name", "paid", f.Name())
	v, ok := f.PackageName()
	AssertOptionalStringEquals(t, "PackageName", props.Package_name, v, ok)
	AssertIntEquals(t, "VersionCode", 42, f.VersionCode())
	v, ok = f.VersionName()
	AssertOptionalStringEquals(t, "VersionName", props.Version_name, v, ok)
	AssertIntEquals(t, "MinSdkVersion", 15, f.MinSdkVersion())
	AssertIntEquals(t, "TargetSdkVersion", 34, f.TargetSdkVersion())
	AssertIntEquals(t, "RenderscriptTargetApi", 18, f.RenderscriptTargetApi())
	v, ok = f.TestPackageName()
	AssertOptionalStringEquals(t, "TestPackageName", props.Test_package_name, v, ok)
	v, ok = f.TestInstrumentationRunner()
	AssertOptionalStringEquals(t, "TestInstrumentationRunner", props.Test_instrumentation_runner, v, ok)

	AssertDeepEquals(t, "BuildConfigFields", []ClassField{
		{Type: "boolean", Name: "IS_PAID", Value: "true"},
		{Type: "String", Name: "URL", Value: "\"https://example.com\""},
	}, f.BuildConfigFields())
	AssertDeepEquals(t, "ResValues", []ClassField{{Type: "string", Name: "app_name", Value: "Paid"}}, f.ResValues())
	AssertArrayString(t, "ProguardFiles", []string{"proguard-paid.pro"}, f.ProguardFiles())
	AssertArrayString(t, "ConsumerProguardFiles", []string{"consumer-paid.pro"}, f.ConsumerProguardFiles())
	AssertDeepEquals(t, "ManifestPlaceholders",
		map[string]string{"scheme": "paid", "host": "example.com"}, f.ManifestPlaceholders())
	multiDex, ok := f.MultiDexEnabled()
	AssertBoolEquals(t, "MultiDexEnabled set", true, ok)
	AssertBoolEquals(t, "MultiDexEnabled", true, multiDex)
}

func TestProductFlavorPropertiesRebuild(t *testing.T) {
	f, err := NewProductFlavor(fullFlavorProperties())
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := NewProductFlavor(f.Properties())
	if err != nil {
		t.Fatal(err)
	}
	AssertDeepEquals(t, "properties", f.Properties(), rebuilt.Properties())

	empty, err := NewProductFlavor(FlavorProperties{BaseConfigProperties: BaseConfigProperties{Name: "empty"}})
	if err != nil {
		t.Fatal(err)
	}
	AssertDeepEquals(t, "empty properties",
		FlavorProperties{BaseConfigProperties: BaseConfigProperties{Name: "empty"}}, empty.Properties())
}

func TestProductFlavorEmptyStringIsSet(t *testing.T) {
	f, err := NewProductFlavor(FlavorProperties{
		BaseConfigProperties: BaseConfigProperties{Name: "blank"},
		Version_name:         proptools.StringPtr(""),
	})
	if err != nil {
		t.Fatal(err)
	}
	v, ok := f.VersionName()
	AssertBoolEquals(t, "VersionName set", true, ok)
	AssertStringEquals(t, "VersionName", "", v)
}

func TestProductFlavorZeroIsSet(t *testing.T) {
	f, err := NewProductFlavor(FlavorProperties{
		BaseConfigProperties: BaseConfigProperties{Name: "zero"},
		Version_code:         proptools.Int64Ptr(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	AssertIntEquals(t, "VersionCode", 0, f.VersionCode())
	AssertBoolEquals(t, "IsSet(VersionCode)", true, IsSet(f.VersionCode()))
	AssertBoolEquals(t, "IsSet(MinSdkVersion)", false, IsSet(f.MinSdkVersion()))
}

func TestProductFlavorInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		props    FlavorProperties
		property string
		message  string
	}{
		{
			name:     "empty name",
			props:    FlavorProperties{},
			property: "name",
			message:  "invalid configuration: name: must be set",
		},
		{
			name:     "name with spaces",
			props:    FlavorProperties{BaseConfigProperties: BaseConfigProperties{Name: "free tier"}},
			property: "name",
		},
		{
			name:     "name starting with a digit",
			props:    FlavorProperties{BaseConfigProperties: BaseConfigProperties{Name: "2free"}},
			property: "name",
		},
		{
			name: "negative min sdk",
			props: FlavorProperties{
				BaseConfigProperties: BaseConfigProperties{Name: "free"},
				Min_sdk_version:      proptools.Int64Ptr(-1),
			},
			property: "min_sdk_version",
			message:  `invalid configuration for "free": min_sdk_version: must not be negative, got -1`,
		},
		{
			name: "version code out of range",
			props: FlavorProperties{
				BaseConfigProperties: BaseConfigProperties{Name: "free"},
				Version_code:         proptools.Int64Ptr(1 << 40),
			},
			property: "version_code",
		},
		{
			name: "malformed build config field",
			props: FlavorProperties{
				BaseConfigProperties: BaseConfigProperties{
					Name:                "free",
					Build_config_fields: []string{"boolean:IS_FREE"},
				},
			},
			property: "build_config_fields",
		},
		{
			name: "duplicate res value",
			props: FlavorProperties{
				BaseConfigProperties: BaseConfigProperties{
					Name:       "free",
					Res_values: []string{"string:app_name:A", "string:app_name:B"},
				},
			},
			property: "res_values",
		},
		{
			name: "malformed placeholder",
			props: FlavorProperties{
				BaseConfigProperties: BaseConfigProperties{
					Name:                  "free",
					Manifest_placeholders: []string{"scheme"},
				},
			},
			property: "manifest_placeholders",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewProductFlavor(tc.props)
			if f != nil {
				t.Errorf("expected no flavor, got %q", f.Name())
			}
			AssertInvalidConfiguration(t, tc.name, tc.property, err)
			AssertBoolEquals(t, "IsInvalidConfiguration", true, IsInvalidConfiguration(err))
			if tc.message != "" {
				AssertErrorMessageEquals(t, tc.name, tc.message, err)
			}
		})
	}
}

func TestProductFlavorInputNotShared(t *testing.T) {
	props := fullFlavorProperties()
	f, err := NewProductFlavor(props)
	if err != nil {
		t.Fatal(err)
	}

	*props.Package_name = "com.example.changed"
	*props.Min_sdk_version = 99
	*props.Multi_dex_enabled = false
	props.Proguard_files[0] = "changed.pro"

	v, _ := f.PackageName()
	AssertStringEquals(t, "PackageName", "com.example.paid", v)
	AssertIntEquals(t, "MinSdkVersion", 15, f.MinSdkVersion())
	multiDex, _ := f.MultiDexEnabled()
	AssertBoolEquals(t, "MultiDexEnabled", true, multiDex)
	AssertArrayString(t, "ProguardFiles", []string{"proguard-paid.pro"}, f.ProguardFiles())

	// Mutating returned values must not reach the flavor either.
	f.ProguardFiles()[0] = "changed.pro"
	f.ManifestPlaceholders()["scheme"] = "changed"
	f.BuildConfigFields()[0].Value = "false"
	AssertArrayString(t, "ProguardFiles after mutation", []string{"proguard-paid.pro"}, f.ProguardFiles())
	AssertStringEquals(t, "placeholder after mutation", "paid", f.ManifestPlaceholders()["scheme"])
	AssertStringEquals(t, "build config field after mutation", "true", f.BuildConfigFields()[0].Value)
}

func TestProductFlavorConcurrentReads(t *testing.T) {
	f, err := NewProductFlavor(fullFlavorProperties())
	if err != nil {
		t.Fatal(err)
	}
	want := f.Properties()

	var wg sync.WaitGroup
	results := make([]FlavorProperties, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.VersionCode()
				f.PackageName()
				f.ManifestPlaceholders()
			}
			results[i] = f.Properties()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		AssertDeepEquals(t, fmt.Sprintf("reader %d", i), want, got)
	}
}
