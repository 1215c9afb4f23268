// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table, for example:
//
//   return {
//       ignore_duplicates = false,
//       strategy = "iterative",
//       traversal = "pre_order",
//       free_list = 64,
//       logging = {
//           directory = "log",
//           file = "avl.log",
//           size = 1048576,
//           count = 10,
//           levels = { DEFAULT = "info", avl = "debug" },
//       },
//   }
package configuration
