package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeEnv(t *testing.T) {
	t.Setenv(envKey, "")
	assert.Equal(t, DevEnv, RuntimeEnv())
	assert.False(t, IsProdEnv())

	t.Setenv(envKey, ProdEnv)
	assert.Equal(t, ProdEnv, RuntimeEnv())
	assert.True(t, IsProdEnv())
}

func TestFindModuleRoot(t *testing.T) {
	root := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.Nil(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, findModuleRoot(nested))
	assert.Equal(t, root, findModuleRoot(root))
}

func TestLoadDotEnvsPriority(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRIBE_DOTENV_A=shared\nTRIBE_DOTENV_B=shared\n"), 0o644))
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("TRIBE_DOTENV_A=test\n"), 0o644))
	t.Setenv(envKey, TestEnv)
	t.Cleanup(func() {
		os.Unsetenv("TRIBE_DOTENV_A")
		os.Unsetenv("TRIBE_DOTENV_B")
	})

	loadDotEnvs(dir + string(filepath.Separator))

	// godotenv never overrides a variable that is already set, so the first
	// loaded file wins.
	assert.Equal(t, "test", os.Getenv("TRIBE_DOTENV_A"))
	assert.Equal(t, "shared", os.Getenv("TRIBE_DOTENV_B"))
}
