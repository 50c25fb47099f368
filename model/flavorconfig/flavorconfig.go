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

// Package flavorconfig reads product flavor declarations from build files.
//
// A Blueprint file declares one flavor per product_flavor module:
//
//	product_flavor {
//	    name: "free",
//	    package_name: "com.example.free",
//	    version_code: 3,
//	    min_sdk_version: "21",
//	    target_sdk_version: "current",
//	}
//
// The same data can be given as YAML, with the flavors in a top level "flavors" list and the
// property names as keys.
package flavorconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/blueprint/parser"
	"github.com/google/blueprint/proptools"

	"android/buildermodel/model"
)

// ModuleType is the Blueprint module type that declares a product flavor.
const ModuleType = "product_flavor"

// flavorProperties are the product_flavor properties that are written differently in build
// files than in model.FlavorProperties. API levels are strings so that "current" and codenames
// can be used, as in the rest of the build.
type flavorProperties struct {
	Package_name                *string
	Version_code                *int64
	Version_name                *string
	Min_sdk_version             *string
	Target_sdk_version          *string
	Renderscript_target_api     *int64
	Test_package_name           *string
	Test_instrumentation_runner *string
}

// Parse reads the product_flavor modules from a Blueprint file. Other module types are ignored.
// The flavors are returned in the order they are declared.
func Parse(r io.Reader, from string) ([]*model.ProductFlavor, []error) {
	scope := parser.NewScope(nil)
	file, errs := parser.ParseAndEval(from, r, scope)
	if len(errs) > 0 {
		return nil, errs
	}

	var flavors []*model.ProductFlavor
	for _, def := range file.Defs {
		switch def := def.(type) {
		case *parser.Module:
			if def.Type != ModuleType {
				continue
			}
			flavor, newErrs := processFlavorDef(def)
			if len(newErrs) > 0 {
				errs = append(errs, newErrs...)
				continue
			}
			flavors = append(flavors, flavor)

		case *parser.Assignment:
			// Already handled via Scope object
		default:
			panic("unknown definition type")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return flavors, nil
}

func processFlavorDef(def *parser.Module) (*model.ProductFlavor, []error) {
	base := &model.BaseConfigProperties{}
	props := &flavorProperties{}

	_, errs := proptools.UnpackProperties(def.Properties, base, props)
	if len(errs) > 0 {
		return nil, errs
	}

	flavor, err := newFlavor(*base, *props)
	if err != nil {
		return nil, []error{fmt.Errorf("%s: %w", def.TypePos, err)}
	}
	return flavor, nil
}

func newFlavor(base model.BaseConfigProperties, props flavorProperties) (*model.ProductFlavor, error) {
	modelProps := model.FlavorProperties{
		BaseConfigProperties:        base,
		Package_name:                props.Package_name,
		Version_code:                props.Version_code,
		Version_name:                props.Version_name,
		Renderscript_target_api:     props.Renderscript_target_api,
		Test_package_name:           props.Test_package_name,
		Test_instrumentation_runner: props.Test_instrumentation_runner,
	}

	var err error
	if modelProps.Min_sdk_version, err = apiLevelProperty(base.Name, "min_sdk_version", props.Min_sdk_version); err != nil {
		return nil, err
	}
	if modelProps.Target_sdk_version, err = apiLevelProperty(base.Name, "target_sdk_version", props.Target_sdk_version); err != nil {
		return nil, err
	}

	return model.NewProductFlavor(modelProps)
}

func apiLevelProperty(flavor, property string, raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	level, err := ApiLevelFromUser(*raw)
	if err != nil {
		return nil, &model.InvalidConfigurationError{
			Flavor:   flavor,
			Property: property,
			Reason:   err.Error(),
		}
	}
	return proptools.Int64Ptr(int64(level)), nil
}

// ParseFile reads the flavors declared in path. Files ending in .yaml or .yml are read as YAML,
// everything else as Blueprint.
func ParseFile(path string) ([]*model.ProductFlavor, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{err}
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYaml(f, path)
	default:
		return Parse(f, path)
	}
}
