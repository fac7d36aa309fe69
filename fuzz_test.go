package yayaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-yayaml"
	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/internal/testutil"
	"github.com/stretchr/testify/require"
)

// addSeeds seeds the corpus with the golden documents and a few edge
// cases.
func addSeeds(f *testing.F) {
	seedFiles, err := filepath.Glob("testdata/*.yay")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(string(data))
	}

	f.Add("")
	f.Add("a")
	f.Add("a 1\na 2\na x\n  b")
	f.Add("\t\ta\n b\r\n\r c -.-")
	f.Add("a\u00a0b\n\u3000c d")
	f.Add(testutil.Document(3, 2))
}

func FuzzConvert(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, input string) {
		root, err := yayaml.Convert(input)
		if err != nil {
			// A named map merged into a sequence is the only way
			// valid text fails.
			require.ErrorIs(t, err, yayaml.ErrIncompatibleShape)
			return
		}

		again, err := yayaml.Convert(input)
		require.NoError(t, err)
		require.True(t, ast.Equal(root, again), "conversion is not deterministic")

		// Comment lines and blank lines are invisible.
		lines := strings.Split(input, "\n")
		noisy := "# fuzz\n\n" + strings.Join(lines, "\n#\n") + "\n\n"
		withNoise, err := yayaml.Convert(noisy)
		require.NoError(t, err)
		require.True(t, ast.Equal(root, withNoise), "comments changed the result")
	})
}

func FuzzRoundTrip(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, input string) {
		root, err := yayaml.Convert(input)
		if err != nil {
			return
		}

		out, err := yayaml.Marshal(root)
		if err != nil {
			// Some trees have no text form, e.g. NaN values or keys
			// holding a line break.
			var encErr *yayaml.EncodeError
			require.ErrorAs(t, err, &encErr)
			return
		}

		again, err := yayaml.Convert(string(out))
		require.NoError(t, err, "Convert failed on our own encoded output:\n%s", out)
		requireRoundTrip(t, root, again)
	})
}
