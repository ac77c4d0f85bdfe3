// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the commands of picfg, a command-line front end to
// the layered config service.
//
// Commands:
//
//	show [--explain]   print the merged config (with the source of each key)
//	get <key>          print one value
//	set <key> <value>  store a value in the target layer and save it
//	unset <key>        remove a key from the target layer and save it
//	path               print the backing store of every layer
package cli
