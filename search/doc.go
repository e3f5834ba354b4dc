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


// Package search filters and orders catalog entries for the gallery.
//
// Filtering is a case-insensitive substring match against an entry's
// name, brewery, color and country. Sorting by name or brewery uses a
// locale-aware collator and is stable, so entries that compare equal keep
// their input order. Nothing here mutates its input.
package search
