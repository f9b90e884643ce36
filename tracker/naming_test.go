package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDataRunFolder(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDataRunFolder("L0.35H0.95"))
	assert.True(t, IsDataRunFolder("Run2_L1.00H2.50"))
	assert.False(t, IsDataRunFolder("L0.35H0.95_2021-11-01"))
	assert.False(t, IsDataRunFolder("L0.3H0.95"))
	assert.False(t, IsDataRunFolder("L10.35H0.9"))
	assert.False(t, IsDataRunFolder(""))
}

func TestFolderRule(t *testing.T) {
	t.Parallel()

	sn := SerialNumber("139123")

	exact := RuleFor(FixtureNormal, sn)
	assert.Equal(t, ExactName, exact.Kind)
	assert.True(t, exact.Matches("SN139123"))
	assert.True(t, exact.Matches("SN139123.old"))
	assert.False(t, exact.Matches("SN139123_NW"))
	assert.False(t, exact.Matches("SN139123_123456"))
	assert.False(t, exact.Matches("139123"))

	assert.Equal(t, ExactName, RuleFor(KronosNormal, sn).Kind)

	loose := RuleFor(FixtureNoWindows, sn)
	assert.Equal(t, LooseContains, loose.Kind)
	assert.True(t, loose.Matches("SN139123_NW"))
	assert.True(t, loose.Matches("NW-139123-rerun"))
	assert.False(t, loose.Matches("SN139123"))
	assert.False(t, loose.Matches("SN139124_NW"))
}

func TestChannelIndex(t *testing.T) {
	t.Parallel()

	for ch := 0; ch < Channels; ch++ {
		got, ok := ChannelIndex(ChannelFile(ch))
		assert.True(t, ok)
		assert.Equal(t, ch, got)
	}
	for _, name := range []string{"res_3exc.txt", "res_0.txt", "res_0exc.txt.bak", "res_0excXtxt", "xres_1exc.txt"} {
		_, ok := ChannelIndex(name)
		assert.False(t, ok, name)
	}
}

func TestRootPaths(t *testing.T) {
	t.Parallel()

	p := RootPaths{Fixture: "/fixture", Kronos: "/kronos"}
	assert.Equal(t, "/fixture", p.Path(FixtureNormal))
	assert.Equal(t, "/fixture", p.Path(FixtureNoWindows))
	assert.Equal(t, "/kronos", p.Path(KronosNormal))
	assert.Equal(t, []string{"FixtureNormal", "FixtureNoWindows", "Kronos"},
		[]string{Roots[0].Label(), Roots[1].Label(), Roots[2].Label()})
}
