// Package touchcal updates the PiTFT touchscreen calibration files to match
// the current screen rotation.
package touchcal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/pitft-tools/touchcal/pkg/calibration"
	"github.com/pitft-tools/touchcal/pkg/detect"
	"github.com/pitft-tools/touchcal/pkg/rotation"
	"github.com/pitft-tools/touchcal/pkg/utils/fileutil"
)

const separator = "---------------------------------"

var confirmations = map[string]bool{
	"y":   true,
	"Y":   true,
	"yes": true,
	"YES": true,
}

// Options configures a single Run.
type Options struct {
	// Rotation is the rotation given on the command line. It is detected
	// only when it is empty and RotationSet is false.
	Rotation string
	// RotationSet marks Rotation as given explicitly, even when empty.
	RotationSet bool
	// Force skips the confirmation prompt.
	Force bool
	// DryRun shows the current and new configuration and stops.
	DryRun bool

	PointercalFile string
	XorgConfFile   string

	Detector detect.Detector

	In  io.Reader
	Out io.Writer

	// Geteuid defaults to os.Geteuid.
	Geteuid func() int
}

type target struct {
	path    string
	content string
}

// Run checks privileges, resolves the rotation, previews the change and,
// once confirmed, writes both calibration files. A declined confirmation is
// not an error.
func Run(opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Geteuid == nil {
		opts.Geteuid = os.Geteuid
	}
	out := opts.Out

	if err := EnsureRoot(out, opts.Geteuid); err != nil {
		return err
	}

	r, err := resolveRotation(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "%s %s\n", bold("USING ROTATION:"), r)
	fmt.Fprintln(out)

	entry := calibration.Lookup(r)
	targets := []target{
		{path: opts.PointercalFile, content: entry.Pointercal},
		{path: opts.XorgConfFile, content: entry.XorgConf},
	}

	printCurrent(out, targets)
	printNew(out, targets)

	if opts.DryRun {
		fmt.Fprintln(out, "Dry run, not updating configuration.")
		return nil
	}

	if !opts.Force {
		ok, err := confirm(opts.In, out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Exiting without updating configuration.")
			return nil
		}
	}

	return apply(out, targets)
}

// EnsureRoot returns ErrNotRoot, after telling the user how to fix it, unless
// geteuid reports root.
func EnsureRoot(out io.Writer, geteuid func() int) error {
	if geteuid() == 0 {
		return nil
	}
	fmt.Fprintln(out, "Must be run as root so calibration files can be updated!")
	fmt.Fprintln(out, "Try running with sudo, for example: sudo touchcal")
	return ErrNotRoot
}

func resolveRotation(opts Options) (rotation.Rotation, error) {
	out := opts.Out

	raw := opts.Rotation
	if raw == "" && !opts.RotationSet {
		var found bool
		if opts.Detector != nil {
			raw, found = opts.Detector.Detect()
		}
		if !found {
			fmt.Fprintln(out, "Could not detect screen rotation!")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Make sure PiTFT software is configured and run again.")
			fmt.Fprintln(out, "Alternatively, run with the --rotation parameter to")
			fmt.Fprintln(out, "specify an explicit rotation value.")
			fmt.Fprintln(out)
			return 0, ErrRotationUnknown
		}
		logrus.WithField("rotation", raw).Info("detected screen rotation")
	}

	r, err := rotation.Parse(raw)
	if err != nil {
		fmt.Fprintf(out, "Unsupported rotation value: %s\n", raw)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Rotation must be a value of %s!\n", strings.Join(rotation.Names(), ", "))
		fmt.Fprintln(out)
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedRotation, err)
	}

	return r, nil
}

func printCurrent(out io.Writer, targets []target) {
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, bold("CURRENT CONFIGURATION"))
	fmt.Fprintln(out)
	for _, t := range targets {
		current, err := fileutil.Read(t.path)
		if err != nil {
			logrus.WithError(err).Debug("cannot read current configuration")
			fmt.Fprintf(out, "Could not determine %s configuration.\n", t.path)
			continue
		}
		fmt.Fprintf(out, "Current %s configuration:\n", t.path)
		fmt.Fprintln(out, strings.TrimSpace(current))
		fmt.Fprintln(out)
	}
}

func printNew(out io.Writer, targets []target) {
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, bold("NEW CONFIGURATION"))
	fmt.Fprintln(out)
	for _, t := range targets {
		fmt.Fprintf(out, "New %s configuration:\n", t.path)
		fmt.Fprintln(out, strings.TrimSpace(t.content))
		fmt.Fprintln(out)
	}
}

// confirm asks whether to go ahead. Only an exact y, Y, yes or YES counts as
// a yes; end of input counts as no.
func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Update current configuration to new configuration? [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.HasSuffix(answer, "\n") {
		fmt.Fprintln(out)
	}
	answer = strings.TrimSuffix(answer, "\n")
	answer = strings.TrimSuffix(answer, "\r")

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out)

	return confirmations[answer], nil
}

// apply writes every target, even after a failure, and reports each one.
func apply(out io.Writer, targets []target) error {
	var failed []string
	for _, t := range targets {
		if err := fileutil.Write(t.path, t.content); err != nil {
			logrus.WithError(err).WithField("path", t.path).Error("failed to write calibration")
			fmt.Fprintf(out, "%s Failed to update %s\n", status(false), t.path)
			failed = append(failed, t.path)
			continue
		}
		fmt.Fprintf(out, "%s Updated %s\n", status(true), t.path)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrWriteFailed, strings.Join(failed, ", "))
	}

	return nil
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func status(ok bool) string {
	if ok {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}
