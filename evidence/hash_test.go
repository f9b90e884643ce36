package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exc-aggregator/fsys"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	m := fsys.NewMem().AddFile("/out/SN139123/a.png", []byte("abc"))

	a, err := Describe(m, "/out", "/out/SN139123/a.png", "graph")
	require.NoError(t, err)
	assert.Equal(t, "SN139123/a.png", a.RelativePath)
	assert.Equal(t, "graph", a.Kind)
	assert.Equal(t, int64(3), a.SizeBytes)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", a.SHA256)
	assert.NotEmpty(t, a.WrittenAt)

	_, err = Describe(m, "/out", "/out/missing", "graph")
	assert.Error(t, err)
}
