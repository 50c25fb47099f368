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
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"android/buildermodel/model"
)

type yamlFile struct {
	Flavors []yamlFlavor `yaml:"flavors"`
}

type yamlFlavor struct {
	Name                    string   `yaml:"name"`
	Build_config_fields     []string `yaml:"build_config_fields"`
	Res_values              []string `yaml:"res_values"`
	Proguard_files          []string `yaml:"proguard_files"`
	Consumer_proguard_files []string `yaml:"consumer_proguard_files"`
	Manifest_placeholders   []string `yaml:"manifest_placeholders"`
	Multi_dex_enabled       *bool    `yaml:"multi_dex_enabled"`

	Package_name                *string `yaml:"package_name"`
	Version_code                *int64  `yaml:"version_code"`
	Version_name                *string `yaml:"version_name"`
	Min_sdk_version             *string `yaml:"min_sdk_version"`
	Target_sdk_version          *string `yaml:"target_sdk_version"`
	Renderscript_target_api     *int64  `yaml:"renderscript_target_api"`
	Test_package_name           *string `yaml:"test_package_name"`
	Test_instrumentation_runner *string `yaml:"test_instrumentation_runner"`
}

// ParseYaml reads flavors from a YAML document. Unknown keys are errors, as unknown properties
// are in Blueprint files.
func ParseYaml(r io.Reader, from string) ([]*model.ProductFlavor, []error) {
	var file yamlFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, []error{fmt.Errorf("%s: %w", from, err)}
	}

	var flavors []*model.ProductFlavor
	var errs []error
	for i, y := range file.Flavors {
		base := model.BaseConfigProperties{
			Name:                    y.Name,
			Build_config_fields:     y.Build_config_fields,
			Res_values:              y.Res_values,
			Proguard_files:          y.Proguard_files,
			Consumer_proguard_files: y.Consumer_proguard_files,
			Manifest_placeholders:   y.Manifest_placeholders,
			Multi_dex_enabled:       y.Multi_dex_enabled,
		}
		props := flavorProperties{
			Package_name:                y.Package_name,
			Version_code:                y.Version_code,
			Version_name:                y.Version_name,
			Min_sdk_version:             y.Min_sdk_version,
			Target_sdk_version:          y.Target_sdk_version,
			Renderscript_target_api:     y.Renderscript_target_api,
			Test_package_name:           y.Test_package_name,
			Test_instrumentation_runner: y.Test_instrumentation_runner,
		}
		flavor, err := newFlavor(base, props)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: flavors[%d]: %w", from, i, err))
			continue
		}
		flavors = append(flavors, flavor)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return flavors, nil
}
