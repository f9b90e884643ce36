package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

const FileName = "ADAConfig.xml"

type Config struct {
	XMLName                 xml.Name `xml:"Aggregator" yaml:"-"`
	ImagerFixtureImagesPath string   `xml:"ImagerFixtureImagesPath,attr" yaml:"imager_fixture_images_path" validate:"required"`
	KronosRectImagesPath    string   `xml:"KronosRectImagesPath,attr" yaml:"kronos_rect_images_path" validate:"required"`
	OutputFolderPath        string   `xml:"OutputFolderPath,attr" yaml:"output_folder_path" validate:"required"`
}

var validate = validator.New()

func Default() Config {
	return Config{
		ImagerFixtureImagesPath: `\\brownsharpefxtr\mfg\RectImages\`,
		KronosRectImagesPath:    `\\kronon\RectImages\`,
		OutputFolderPath:        `\\castor\Production\Manufacturing\Accusite\DataAggregation\`,
	}
}

func (c Config) Roots() tracker.RootPaths {
	return tracker.RootPaths{Fixture: c.ImagerFixtureImagesPath, Kronos: c.KronosRectImagesPath}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func Encode(c Config, path string) ([]string, error) {
	if isYAML(path) {
		b, err := yaml.Marshal(c)
		if err != nil {
			return nil, err
		}
		return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n"), nil
	}
	b, err := xml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return []string{strings.TrimSuffix(xml.Header, "\n") + string(b)}, nil
}

func Decode(data []byte, path string) (Config, error) {
	var c Config
	var err error
	if isYAML(path) {
		err = yaml.Unmarshal(data, &c)
		if err == nil && len(strings.TrimSpace(string(data))) == 0 {
			err = errors.New("empty document")
		}
	} else {
		err = xml.Unmarshal(data, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", tracker.ErrConfig, path, err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", tracker.ErrConfig, path, err)
	}
	return c, nil
}

// WriteDefault creates path with the factory defaults. An existing file is
// left untouched and reported as not written.
func WriteDefault(f fsys.FS, path string) (bool, error) {
	if f.Exists(path) {
		return false, nil
	}
	lines, err := Encode(Default(), path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", tracker.ErrConfig, err)
	}
	if err := f.WriteLines(path, lines); err != nil {
		return false, fmt.Errorf("%w: write %s: %w", tracker.ErrIO, path, err)
	}
	return true, nil
}

// Load reads path, creating it with the defaults first if it does not exist.
func Load(f fsys.FS, path string) (Config, error) {
	if _, err := WriteDefault(f, path); err != nil {
		return Config{}, err
	}
	b, err := f.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", tracker.ErrIO, path, err)
	}
	return Decode(b, path)
}
