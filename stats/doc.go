// Copyright 2025 Poiesic Systems
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


// Package stats computes frequency tables over a catalog.
//
// Compute makes a single pass over the entries and counts them by
// country, alcohol percentage range, production year, type, brewery and
// color. Empty attributes contribute to no bucket. The percentage table is
// the exception that always carries every range label, so charts can show
// empty ranges.
//
// Coverage and Markers derive the world map view from the country table.
package stats
