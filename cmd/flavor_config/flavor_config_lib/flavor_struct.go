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

package flavor_config_lib

import (
	"fmt"
	"math"

	"github.com/google/blueprint/proptools"
	"google.golang.org/protobuf/types/known/structpb"

	"android/buildermodel/model"
)

// FlavorToStruct converts a flavor to a protobuf Struct keyed by the build file property names.
// Properties the flavor does not set are omitted.
func FlavorToStruct(f *model.ProductFlavor) *structpb.Struct {
	props := f.Properties()
	fields := map[string]*structpb.Value{
		"name": structpb.NewStringValue(props.Name),
	}

	putString := func(key string, v *string) {
		if v != nil {
			fields[key] = structpb.NewStringValue(*v)
		}
	}
	putInt := func(key string, v *int64) {
		if v != nil {
			fields[key] = structpb.NewNumberValue(float64(*v))
		}
	}
	putList := func(key string, v []string) {
		if v == nil {
			return
		}
		values := make([]*structpb.Value, 0, len(v))
		for _, s := range v {
			values = append(values, structpb.NewStringValue(s))
		}
		fields[key] = structpb.NewListValue(&structpb.ListValue{Values: values})
	}

	putString("package_name", props.Package_name)
	putInt("version_code", props.Version_code)
	putString("version_name", props.Version_name)
	putInt("min_sdk_version", props.Min_sdk_version)
	putInt("target_sdk_version", props.Target_sdk_version)
	putInt("renderscript_target_api", props.Renderscript_target_api)
	putString("test_package_name", props.Test_package_name)
	putString("test_instrumentation_runner", props.Test_instrumentation_runner)
	putList("build_config_fields", props.Build_config_fields)
	putList("res_values", props.Res_values)
	putList("proguard_files", props.Proguard_files)
	putList("consumer_proguard_files", props.Consumer_proguard_files)
	putList("manifest_placeholders", props.Manifest_placeholders)
	if props.Multi_dex_enabled != nil {
		fields["multi_dex_enabled"] = structpb.NewBoolValue(*props.Multi_dex_enabled)
	}

	return &structpb.Struct{Fields: fields}
}

// FlavorFromStruct is the inverse of FlavorToStruct. Unknown keys and values of the wrong kind
// are errors.
func FlavorFromStruct(s *structpb.Struct) (*model.ProductFlavor, error) {
	var props model.FlavorProperties
	for key, value := range s.GetFields() {
		var err error
		switch key {
		case "name":
			var name *string
			name, err = stringField(key, value)
			if name != nil {
				props.Name = *name
			}
		case "package_name":
			props.Package_name, err = stringField(key, value)
		case "version_code":
			props.Version_code, err = intField(key, value)
		case "version_name":
			props.Version_name, err = stringField(key, value)
		case "min_sdk_version":
			props.Min_sdk_version, err = intField(key, value)
		case "target_sdk_version":
			props.Target_sdk_version, err = intField(key, value)
		case "renderscript_target_api":
			props.Renderscript_target_api, err = intField(key, value)
		case "test_package_name":
			props.Test_package_name, err = stringField(key, value)
		case "test_instrumentation_runner":
			props.Test_instrumentation_runner, err = stringField(key, value)
		case "build_config_fields":
			props.Build_config_fields, err = listField(key, value)
		case "res_values":
			props.Res_values, err = listField(key, value)
		case "proguard_files":
			props.Proguard_files, err = listField(key, value)
		case "consumer_proguard_files":
			props.Consumer_proguard_files, err = listField(key, value)
		case "manifest_placeholders":
			props.Manifest_placeholders, err = listField(key, value)
		case "multi_dex_enabled":
			b, ok := value.GetKind().(*structpb.Value_BoolValue)
			if !ok {
				err = fmt.Errorf("%s: expected a bool", key)
			} else {
				props.Multi_dex_enabled = proptools.BoolPtr(b.BoolValue)
			}
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return model.NewProductFlavor(props)
}

func stringField(key string, value *structpb.Value) (*string, error) {
	s, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, fmt.Errorf("%s: expected a string", key)
	}
	return proptools.StringPtr(s.StringValue), nil
}

func intField(key string, value *structpb.Value) (*int64, error) {
	n, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return nil, fmt.Errorf("%s: expected a number", key)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) {
		return nil, fmt.Errorf("%s: %v is not an integer", key, n.NumberValue)
	}
	return proptools.Int64Ptr(int64(n.NumberValue)), nil
}

func listField(key string, value *structpb.Value) ([]string, error) {
	l, ok := value.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list", key)
	}
	ret := make([]string, 0, len(l.ListValue.GetValues()))
	for i, v := range l.ListValue.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected a string", key, i)
		}
		ret = append(ret, s.StringValue)
	}
	return ret, nil
}

// FlavorSetToList converts every flavor of the set, in declaration order.
func FlavorSetToList(set *model.FlavorSet) *structpb.ListValue {
	values := make([]*structpb.Value, 0, set.Len())
	for _, f := range set.Flavors() {
		values = append(values, structpb.NewStructValue(FlavorToStruct(f)))
	}
	return &structpb.ListValue{Values: values}
}

func FlavorSetFromList(list *structpb.ListValue) (*model.FlavorSet, error) {
	flavors := make([]*model.ProductFlavor, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("flavor %d: expected a struct", i)
		}
		f, err := FlavorFromStruct(s.StructValue)
		if err != nil {
			return nil, fmt.Errorf("flavor %d: %w", i, err)
		}
		flavors = append(flavors, f)
	}
	return model.NewFlavorSet(flavors...)
}
