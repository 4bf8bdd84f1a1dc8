// Copyright 2025 Ian Lewis
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

package dictcc_test

import (
	"bytes"
	"strings"
	"testing"

	dictcc "github.com/ianlewis/go-dictcc"
)

// TestDict_Export tests Dict.Export.
func TestDict_Export(t *testing.T) {
	t.Parallel()

	d := importTestDump(t)

	var dump bytes.Buffer
	n, err := d.Export("a", &dump)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 3 {
		t.Errorf("Export: expected 3 lines, got %d", n)
	}

	lines := strings.Split(strings.TrimRight(dump.String(), "\n"), "\n")
	if lines[0] != "# DE-EN vocabulary database" {
		t.Errorf("Export: unexpected header line %q", lines[0])
	}
	if !strings.Contains(dump.String(), "Haus {n}\thouse\t") {
		t.Errorf("Export: missing record, got:\n%s", dump.String())
	}

	// The exported dump can be imported again.
	d2 := dictcc.New(t.TempDir())
	countA, countB, err := d2.Import(&dump)
	if err != nil {
		t.Fatalf("Import of exported dump: %v", err)
	}
	if countA != 4 || countB != 3 {
		t.Errorf("Import of exported dump: expected counts (4, 3), got (%d, %d)", countA, countB)
	}
}

// TestDict_Export_noMetadata tests exporting a direction without language
// metadata.
func TestDict_Export_noMetadata(t *testing.T) {
	t.Parallel()

	d := dictcc.New(t.TempDir())
	if _, _, err := d.Import(strings.NewReader(testDump)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var dump bytes.Buffer
	if _, err := d.Export("c", &dump); err == nil {
		t.Errorf("Export: expected error for direction without metadata")
	}
}
