package config

import "github.com/sirupsen/logrus"

// Config describes where calibration is written and how the display is found.
type Config interface {
	PointercalFile() string
	XorgConfFile() string
	ProductToken() string
	ModprobeBinary() string

	SetPointercalFile(string)
	SetXorgConfFile(string)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
}
