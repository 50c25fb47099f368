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
	"sort"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"

	"android/buildermodel/model"
)

// DescribeFlavor returns one "property: value" line per property the flavor sets, sorted by
// property name with the name first.
func DescribeFlavor(f *model.ProductFlavor) []string {
	fields := FlavorToStruct(f).GetFields()
	keys := lo.Without(lo.Keys(fields), "name")
	sort.Strings(keys)

	lines := []string{"name: " + f.Name()}
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", key, describeValue(fields[key])))
	}
	return lines
}

func describeValue(v *structpb.Value) string {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return fmt.Sprintf("%q", kind.StringValue)
	case *structpb.Value_NumberValue:
		return fmt.Sprintf("%d", int64(kind.NumberValue))
	case *structpb.Value_BoolValue:
		return fmt.Sprintf("%t", kind.BoolValue)
	case *structpb.Value_ListValue:
		items := lo.Map(kind.ListValue.GetValues(), func(item *structpb.Value, _ int) string {
			return describeValue(item)
		})
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return ""
	}
}

// FilterFlavors returns the flavors of set whose names are in names, in declaration order, and
// the names that matched no flavor.
func FilterFlavors(set *model.FlavorSet, names []string) ([]*model.ProductFlavor, []string) {
	found := lo.Filter(set.Flavors(), func(f *model.ProductFlavor, _ int) bool {
		return lo.Contains(names, f.Name())
	})
	missing := lo.Filter(names, func(name string, _ int) bool {
		_, ok := set.Get(name)
		return !ok
	})
	return found, missing
}
