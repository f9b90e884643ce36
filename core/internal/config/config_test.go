package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

const defaultXML = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<Aggregator ImagerFixtureImagesPath="\\brownsharpefxtr\mfg\RectImages\" ` +
	`KronosRectImagesPath="\\kronon\RectImages\" ` +
	`OutputFolderPath="\\castor\Production\Manufacturing\Accusite\DataAggregation\"></Aggregator>`

func TestLoadCreatesDefault(t *testing.T) {
	t.Parallel()

	m := fsys.NewMem().AddDir("/work")
	c, err := Load(m, "/work/"+FileName)
	require.NoError(t, err)
	assert.Equal(t, Default().ImagerFixtureImagesPath, c.ImagerFixtureImagesPath)
	assert.Equal(t, Default().KronosRectImagesPath, c.KronosRectImagesPath)
	assert.Equal(t, Default().OutputFolderPath, c.OutputFolderPath)

	b, err := m.ReadFile("/work/" + FileName)
	require.NoError(t, err)
	assert.Equal(t, defaultXML+"\n", string(b))
}

func TestLoadExisting(t *testing.T) {
	t.Parallel()

	m := fsys.NewMem().AddLines("/work/"+FileName,
		`<Aggregator ImagerFixtureImagesPath="/mnt/fixture" KronosRectImagesPath="/mnt/kronos" OutputFolderPath="/mnt/out"/>`)
	c, err := Load(m, "/work/"+FileName)
	require.NoError(t, err)
	assert.Equal(t, tracker.RootPaths{Fixture: "/mnt/fixture", Kronos: "/mnt/kronos"}, c.Roots())
	assert.Equal(t, "/mnt/out", c.OutputFolderPath)

	written, err := WriteDefault(m, "/work/"+FileName)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":             "",
		"not xml":           "ImagerFixtureImagesPath=/mnt",
		"missing attribute": `<Aggregator ImagerFixtureImagesPath="\\brownsharpefxtr\mfg\RectImages\"/>`,
		"wrong element":     `<Config ImagerFixtureImagesPath="a" KronosRectImagesPath="b" OutputFolderPath="c"/>`,
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := fsys.NewMem().AddFile("/work/"+FileName, []byte(doc))
			_, err := Load(m, "/work/"+FileName)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tracker.ErrConfig), err.Error())
		})
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	m := fsys.NewMem().AddDir("/work")
	c, err := Load(m, "/work/aggregator.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default().OutputFolderPath, c.OutputFolderPath)

	m.AddLines("/work/custom.yml",
		"imager_fixture_images_path: /mnt/fixture",
		"kronos_rect_images_path: /mnt/kronos",
		"output_folder_path: /mnt/out")
	c, err = Load(m, "/work/custom.yml")
	require.NoError(t, err)
	assert.Equal(t, "/mnt/kronos", c.KronosRectImagesPath)

	m.AddLines("/work/partial.yml", "output_folder_path: /mnt/out")
	_, err = Load(m, "/work/partial.yml")
	assert.True(t, errors.Is(err, tracker.ErrConfig))

	m.AddFile("/work/empty.yml", nil)
	_, err = Load(m, "/work/empty.yml")
	assert.True(t, errors.Is(err, tracker.ErrConfig))
}
