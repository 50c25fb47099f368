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
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"android/buildermodel/model"
	"android/buildermodel/model/flavorconfig"
)

// Formats accepted by WriteFormattedMessage.
var Formats = []string{"json", "pb", "textproto"}

// Write a marshalled message to a file.
//
// Marshal the message based on the extension of the path we are writing it to.
//
// Args:
//
//	path string: the path of the file to write to.  Directories are not created.
//	  Supported extensions are: ".json", ".pb", and ".textproto".
//	message proto.Message: the message to write.
//
// Returns:
//
//	error: any error encountered.
func WriteMessage(path string, message proto.Message) (err error) {
	format := filepath.Ext(path)
	if len(format) > 1 {
		// Strip any leading dot.
		format = format[1:]
	}
	return WriteFormattedMessage(path, format, message)
}

// Write a marshalled message to a file, using the given format.
//
// Args:
//
//	path string: the path of the file to write to.  Directories are not created.
//	format string: one of "json", "pb", or "textproto".
//	message proto.Message: the message to write.
func WriteFormattedMessage(path, format string, message proto.Message) (err error) {
	data, err := MarshalMessage(format, message)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalMessage marshals message in the given format.
func MarshalMessage(format string, message proto.Message) ([]byte, error) {
	switch format {
	case "json":
		return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(message)
	case "pb", "binaryproto", "protobuf":
		return proto.Marshal(message)
	case "textproto":
		return prototext.MarshalOptions{Multiline: true}.Marshal(message)
	default:
		return nil, fmt.Errorf("Unknown message format %q", format)
	}
}

// Read a message from a file.
//
// The message is unmarshalled based on the extension of the file read.
func LoadMessage(path string, message proto.Message) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".json":
		return protojson.Unmarshal(data, message)
	case ".pb", ".protobuf", ".binaryproto":
		return proto.Unmarshal(data, message)
	case ".textproto":
		return prototext.Unmarshal(data, message)
	}
	return fmt.Errorf("Unknown message format for %s", path)
}

// LoadFlavorSet reads the flavors declared in every path and returns them as one set. Flavor
// names must be unique across all the files. Every error found is returned, not just the first.
func LoadFlavorSet(paths []string) (*model.FlavorSet, error) {
	var result *multierror.Error
	var flavors []*model.ProductFlavor
	for _, path := range paths {
		fileFlavors, errs := flavorconfig.ParseFile(path)
		for _, err := range errs {
			result = multierror.Append(result, err)
		}
		flavors = append(flavors, fileFlavors...)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return model.NewFlavorSet(flavors...)
}
