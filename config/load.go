// This file is part of Tickinput.
//
// Tickinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tickinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tickinput.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tickinput/tickinput/curated"
)

// Sentinal error patterns.
const (
	UnknownFormat = "config: unknown document format (%s)"
	ParseError    = "config: parse %s document: %v"
	SchemaInvalid = "config: document does not match schema: %v"
	LoadError     = "config: load: %v"
)

// Format of a configuration document.
type Format string

// List of supported formats.
const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath decides the format of the document from the extension of
// the filename.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", curated.Errorf(UnknownFormat, filepath.Ext(path))
}

//go:embed schema.json
var schemaDefinition []byte

const schemaURL = "tickinput.schema.json"

var schema struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func compiledSchema() (*jsonschema.Schema, error) {
	schema.once.Do(func() {
		c := jsonschema.NewCompiler()
		schema.err = c.AddResource(schemaURL, bytes.NewReader(schemaDefinition))
		if schema.err != nil {
			return
		}
		schema.compiled, schema.err = c.Compile(schemaURL)
	})
	return schema.compiled, schema.err
}

// Load reads and parses the document at the specified path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return doc, nil
}

// Parse the data as a document of the specified format. The document is
// validated against the schema before being returned.
func Parse(data []byte, format Format) (*Document, error) {
	normalised, err := normalise(data, format)
	if err != nil {
		return nil, err
	}

	var instance interface{}
	if err := json.Unmarshal(normalised, &instance); err != nil {
		return nil, curated.Errorf(ParseError, format, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, curated.Errorf(SchemaInvalid, err)
	}
	if err := sch.Validate(instance); err != nil {
		return nil, curated.Errorf(SchemaInvalid, err)
	}

	var doc Document
	if err := json.Unmarshal(normalised, &doc); err != nil {
		return nil, curated.Errorf(ParseError, format, err)
	}

	return &doc, nil
}

// normalise converts the data to JSON. JSON data is returned unchanged.
func normalise(data []byte, format Format) ([]byte, error) {
	var generic interface{}

	switch format {
	case JSON:
		return data, nil
	case TOML:
		var m map[string]interface{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, curated.Errorf(ParseError, format, err)
		}
		generic = m
	case YAML:
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, curated.Errorf(ParseError, format, err)
		}
	default:
		return nil, curated.Errorf(UnknownFormat, format)
	}

	b, err := json.Marshal(generic)
	if err != nil {
		return nil, curated.Errorf(ParseError, format, err)
	}

	return b, nil
}

// Marshal the document as JSON.
func (doc *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
