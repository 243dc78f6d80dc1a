package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pitft-tools/touchcal/pkg/calibration"
	"github.com/pitft-tools/touchcal/pkg/detect"
	"github.com/pitft-tools/touchcal/pkg/utils/ptr"
)

// DefaultPath is where the optional config file is looked up.
const DefaultPath = "/etc/touchcal.json"

var (
	defaultFileConfig = &RawFileConfig{
		PointercalFile: ptr.To(calibration.DefaultPointercalFile),
		XorgConfFile:   ptr.To(calibration.DefaultXorgConfFile),
		ProductToken:   ptr.To(detect.DefaultProductToken),
		ModprobeBinary: ptr.To(detect.DefaultModprobeBinary),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type RawFileConfig struct {
	PointercalFile *string `json:"pointercalFile,omitempty"`
	XorgConfFile   *string `json:"xorgConfFile,omitempty"`
	ProductToken   *string `json:"productToken,omitempty"`
	ModprobeBinary *string `json:"modprobeBinary,omitempty"`
}

func pick(v, def *string) string {
	if v != nil && *v != "" {
		return *v
	}
	return *def
}

func (f *File) PointercalFile() string {
	if f.c == nil {
		panic("config is nil")
	}
	return pick(f.c.PointercalFile, defaultFileConfig.PointercalFile)
}

func (f *File) XorgConfFile() string {
	if f.c == nil {
		panic("config is nil")
	}
	return pick(f.c.XorgConfFile, defaultFileConfig.XorgConfFile)
}

func (f *File) ProductToken() string {
	if f.c == nil {
		panic("config is nil")
	}
	return pick(f.c.ProductToken, defaultFileConfig.ProductToken)
}

func (f *File) ModprobeBinary() string {
	if f.c == nil {
		panic("config is nil")
	}
	return pick(f.c.ModprobeBinary, defaultFileConfig.ModprobeBinary)
}

func (f *File) SetPointercalFile(s string) {
	if f.c == nil {
		panic("config is nil")
	}
	f.c.PointercalFile = &s
}

func (f *File) SetXorgConfFile(s string) {
	if f.c == nil {
		panic("config is nil")
	}
	f.c.XorgConfFile = &s
}

func (f *File) Load() error {
	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file means defaults.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"pointercalFile": f.PointercalFile(),
		"xorgConfFile":   f.XorgConfFile(),
		"productToken":   f.ProductToken(),
		"modprobeBinary": f.ModprobeBinary(),
	}
}
