// Copyright 2026 The ift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package config

const sourceSample = `
# Where interfaces are enumerated from (system|netlink|static)
# (default system)
mode = "system"

# Interfaces of the static mode, in enumeration order. Addresses are given
# in prefix notation or as bare addresses.
#
# [[source.interfaces]]
# name = "lo0"
# up = true
# addrs = ["127.0.0.1/8", "::1"]
`

const routeSample = `
# How the default route interface is resolved (auto|netlink|command|static)
# (default auto)
mode = "auto"

# Default route interface of the static mode.
# default_interface = "eth0"
`
