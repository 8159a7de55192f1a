// Package config provides the editor configuration.
//
// # Architecture
//
// Configuration is built from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← JDEDIT_TAB_STOP, JDEDIT_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/jdedit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Each layer is loaded into a map by the loader sub-package, the maps are
// deep-merged, and the result is decoded into a Config. Unknown keys are
// rejected so typos do not go unnoticed.
//
// # Example
//
//	[editor]
//	tab_stop = 8
//	line_numbers = true
//	quit_times = 3
//	message_timeout = "5s"
//
//	syntax_file = "~/.config/jdedit/syntax.yaml"
//
//	[log]
//	level = "debug"
//	file = "/tmp/jdedit.log"
//
//	[theme]
//	keyword1 = 94
//	string = 93
package config
