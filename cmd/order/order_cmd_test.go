package order

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/reactor/reactor"
)

// writeFixtureTree materializes the seven-project reactor used by the engine
// tests as reactor.yaml files on disk.
func writeFixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	manifests := map[string]string{
		".": `
namespace: acme
name: root
version: 1.0.0
modules:
  - a
  - b
  - c
  - solo
`,
		"a": `
namespace: acme
name: a
version: 1.0.0
parent: acme:root
`,
		"b": `
namespace: acme
name: b
version: 1.0.0
parent: acme:root
dependencies:
  - acme:a
`,
		"c": `
namespace: acme
name: c
version: 1.0.0
parent: acme:root
modules:
  - c1
  - c2
`,
		"c/c1": `
namespace: acme
name: c1
version: 1.0.0
parent: acme:c
`,
		"c/c2": `
namespace: acme
name: c2
version: 1.0.0
parent: acme:c
dependencies:
  - acme:b
`,
		"solo": `
namespace: acme
name: solo
version: 1.0.0
`,
	}

	for dir, content := range manifests {
		full := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(full, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(full, "reactor.yaml"), []byte(content), 0o644))
	}
	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestOrderCommand_FullReactor(t *testing.T) {
	dir := writeFixtureTree(t)

	output, err := runCommand(t, dir)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestOrderCommand_ScopedWithUpstreamClosure(t *testing.T) {
	dir := writeFixtureTree(t)

	output, err := runCommand(t, dir, "-p", ":c2", "-x", ":b", "-m", "upstream")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestOrderCommand_ShowVersions(t *testing.T) {
	dir := writeFixtureTree(t)

	output, err := runCommand(t, dir, "-p", ":solo", "--versions")
	require.NoError(t, err)
	assert.Equal(t, "acme:solo (1.0.0)\n", output)
}

func TestOrderCommand_JSONOutput(t *testing.T) {
	dir := writeFixtureTree(t)

	output, err := runCommand(t, dir, "-p", ":c2", "-m", "upstream", "-f", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"position": 1, "coordinate": "acme:root"},
		{"position": 2, "coordinate": "acme:a", "prerequisites": ["acme:root"]},
		{"position": 3, "coordinate": "acme:b", "prerequisites": ["acme:root", "acme:a"]},
		{"position": 4, "coordinate": "acme:c", "prerequisites": ["acme:root"]},
		{"position": 5, "coordinate": "acme:c2", "prerequisites": ["acme:c", "acme:b"]}
	]`, output)
}

func TestOrderCommand_DOTOutput(t *testing.T) {
	dir := writeFixtureTree(t)

	output, err := runCommand(t, dir, "-f", "dot")
	require.NoError(t, err)

	assert.Contains(t, output, `"acme:a" -> "acme:b"`)
	assert.Contains(t, output, `"acme:b" -> "acme:c2"`)
	assert.Contains(t, output, `"acme:root"`)
	assert.Contains(t, output, `"acme:solo"`)
}

func TestOrderCommand_UnknownProject(t *testing.T) {
	dir := writeFixtureTree(t)

	_, err := runCommand(t, dir, "-p", ":nonexistent")
	require.Error(t, err)

	var unknown *reactor.UnknownProjectError
	assert.True(t, errors.As(err, &unknown))
}

func TestOrderCommand_EmptyBuildSet(t *testing.T) {
	dir := writeFixtureTree(t)

	_, err := runCommand(t, dir, "-p", ":b", "-x", ":b")
	require.Error(t, err)

	var empty *reactor.EmptyBuildSetError
	assert.True(t, errors.As(err, &empty))
}

func TestOrderCommand_InvalidMakeBehavior(t *testing.T) {
	dir := writeFixtureTree(t)

	_, err := runCommand(t, dir, "-m", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestOrderCommand_InvalidFormat(t *testing.T) {
	dir := writeFixtureTree(t)

	_, err := runCommand(t, dir, "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestOrderCommand_MissingManifest(t *testing.T) {
	_, err := runCommand(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load project descriptors")
}
