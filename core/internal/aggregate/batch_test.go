package aggregate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

func TestCollectAll(t *testing.T) {
	t.Parallel()

	m := fsys.NewMem()
	addTracker(m, "139123")
	addTracker(m, "139124")

	// Missing the no-windows run.
	addRun(m, fixtureRoot+"/SN139125/L0.35H0.95")
	addRun(m, kronosRoot+"/SN139125/L0.35H0.95")

	// Malformed channel file.
	addTracker(m, "139126")
	m.AddLines(fixtureRoot+"/SN139126_NW/L0.35H0.95/res_2exc.txt", "0\t0\t1.0.0")

	// Folder names that are not serial numbers.
	m.AddDir(kronosRoot + "/notes")
	m.AddDir(kronosRoot + "/SN12345")
	m.AddDir(kronosRoot + "/123123SN")
	addRun(m, kronosRoot+"/SN139127_123456/L0.35H0.95")

	// Valid syntax, but the Kronos rule needs the SN prefix.
	addRun(m, kronosRoot+"/139128/L0.35H0.95")

	n, err := CollectAll(testEnv(t, m))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.True(t, m.Exists(outputRoot+"/SN139123/SN139123_Exc.log"))
	assert.True(t, m.Exists(outputRoot+"/SN139124/SN139124_Exc.log"))
	assert.False(t, m.Exists(outputRoot+"/SN139125"))
	assert.False(t, m.Exists(outputRoot+"/SN139126"))
	assert.False(t, m.Exists(outputRoot+"/SN139128"))
}

func TestCollectAllEmptyRoot(t *testing.T) {
	t.Parallel()

	n, err := CollectAll(testEnv(t, fsys.NewMem().AddDir(kronosRoot)))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollectAllUnlistableRoot(t *testing.T) {
	t.Parallel()

	n, err := CollectAll(testEnv(t, fsys.NewMem()))
	assert.True(t, errors.Is(err, tracker.ErrIO))
	assert.Zero(t, n)
}
