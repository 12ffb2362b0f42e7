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

// Package config defines the configuration document for a control context and
// the means of loading it from disk.
//
// A document lists the input interpreters to create (along with their
// profiles and bindings) and the controllers that consume the actions those
// bindings trigger. For example, in JSON:
//
//	{
//	  "interpreters": [
//	    {
//	      "type": "gamepad",
//	      "profiles": [
//	        {
//	          "name": "default",
//	          "bindings": [
//	            {"action": "jump", "button": 0},
//	            {"action": "left", "axis": 0, "direction": "negative"},
//	            {"action": "right", "axis": 0, "direction": "positive"}
//	          ]
//	        }
//	      ]
//	    }
//	  ],
//	  "controllers": [
//	    {"type": "player", "name": "p1", "actions": [{"name": "jump"}, {"name": "left", "continuous": true}]}
//	  ]
//	}
//
// Documents can also be written in TOML or YAML. The format is chosen by the
// file extension. Whatever the format, the document is normalised to the JSON
// data model and validated against the embedded schema before being decoded
// into the Document type.
//
// The Watcher type will reload a document whenever the file changes on disk.
package config
