// Package fixture loads table-driven test cases from YAML files under a
// package's testdata/ directory.
//
// A fixture file is a YAML sequence; each element decodes into T:
//
//	- name: leetcode example 1
//	  flowerbed: [1, 0, 0, 0, 1]
//	  count: 1
//	  want: true
//
// Load fails the calling test immediately when the file is missing, is not
// valid YAML, or holds no cases, so a broken fixture never passes silently.
package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Load reads testdata/<name> relative to the test's working directory and
// decodes it into a slice of T. Unknown keys are rejected.
func Load[T any](tb testing.TB, name string) []T {
	tb.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(tb, err, "read fixture %s", name)

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cases []T
	require.NoError(tb, dec.Decode(&cases), "decode fixture %s", name)
	require.NotEmpty(tb, cases, "fixture %s holds no cases", name)

	return cases
}
