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

// FlavorSet is the set of product flavors declared by one configuration. Names are unique within
// a set, and the set keeps declaration order.
type FlavorSet struct {
	flavors []*ProductFlavor
	byName  map[string]*ProductFlavor
}

func NewFlavorSet(flavors ...*ProductFlavor) (*FlavorSet, error) {
	s := &FlavorSet{
		flavors: make([]*ProductFlavor, 0, len(flavors)),
		byName:  make(map[string]*ProductFlavor, len(flavors)),
	}
	for _, f := range flavors {
		if _, exists := s.byName[f.Name()]; exists {
			return nil, invalidConfigurationf(f.Name(), "name", "flavor is declared more than once")
		}
		s.byName[f.Name()] = f
		s.flavors = append(s.flavors, f)
	}
	return s, nil
}

// Get returns the flavor with the given name.
func (s *FlavorSet) Get(name string) (*ProductFlavor, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Names returns the flavor names in declaration order.
func (s *FlavorSet) Names() []string {
	names := make([]string, 0, len(s.flavors))
	for _, f := range s.flavors {
		names = append(names, f.Name())
	}
	return names
}

func (s *FlavorSet) Flavors() []*ProductFlavor {
	return append([]*ProductFlavor(nil), s.flavors...)
}

func (s *FlavorSet) Len() int {
	return len(s.flavors)
}
