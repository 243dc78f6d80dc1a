// Package detect finds the rotation the PiTFT framebuffer driver is loaded
// with.
package detect

import (
	"bufio"
	"os/exec"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultModprobeBinary is looked up in PATH.
	DefaultModprobeBinary = "modprobe"
	// DefaultProductToken selects the fbtft_device lines of Adafruit displays.
	DefaultProductToken = "name=adafruit"

	driverOptionsPrefix = "options fbtft_device"
)

var rotateRegexp = regexp.MustCompile(`(?i)rotate=(\d+)`)

// Detector reports the rotation the display driver is configured with. The
// returned value is the raw text of the rotate= option and is not validated.
type Detector interface {
	Detect() (string, bool)
}

// Modprobe detects the rotation from the output of `modprobe -c`.
type Modprobe struct {
	// Binary is the modprobe executable. Defaults to DefaultModprobeBinary.
	Binary string
	// Token must appear in a driver options line for it to be considered.
	// Matched case-insensitively. Defaults to DefaultProductToken.
	Token string

	// run executes binary with args and returns its stdout.
	run func(binary string, args ...string) ([]byte, error)
}

var _ Detector = &Modprobe{}

func NewModprobe(binary, token string) *Modprobe {
	if binary == "" {
		binary = DefaultModprobeBinary
	}
	if token == "" {
		token = DefaultProductToken
	}
	return &Modprobe{
		Binary: binary,
		Token:  token,
		run: func(binary string, args ...string) ([]byte, error) {
			return exec.Command(binary, args...).Output()
		},
	}
}

func (m *Modprobe) Detect() (string, bool) {
	out, err := m.run(m.Binary, "-c")
	if err != nil {
		logrus.WithError(err).WithField("binary", m.Binary).Debug("failed to query module configuration")
		// modprobe may fail on an unrelated config file after printing the rest.
		if len(out) == 0 {
			return "", false
		}
	}

	var opts []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, driverOptionsPrefix) {
			opts = append(opts, line)
		}
	}
	logrus.Debugf("found %d %s lines", len(opts), driverOptionsPrefix)

	rotate, ok := Scan(strings.Join(opts, "\n"), m.Token)
	if !ok {
		logrus.WithField("token", m.Token).Debug("no driver options line with a rotate value")
		return "", false
	}

	logrus.WithField("rotate", rotate).Debug("detected rotation from module configuration")
	return rotate, true
}

// Scan returns the rotate= value of the first line in output that contains
// token (case-insensitive) and a rotate= option.
func Scan(output, token string) (string, bool) {
	token = strings.ToLower(token)

	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(strings.ToLower(line), token) {
			continue
		}
		if m := rotateRegexp.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}

	return "", false
}

// Static is a Detector that always reports the same result.
type Static struct {
	Rotation string
	Found    bool
}

func (s Static) Detect() (string, bool) {
	return s.Rotation, s.Found
}
