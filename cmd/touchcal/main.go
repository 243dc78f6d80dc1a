package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pitft-tools/touchcal/pkg/calibration"
	"github.com/pitft-tools/touchcal/pkg/config"
	"github.com/pitft-tools/touchcal/pkg/detect"
	"github.com/pitft-tools/touchcal/pkg/rotation"
	"github.com/pitft-tools/touchcal/pkg/touchcal"
	"github.com/pitft-tools/touchcal/pkg/version"
)

var (
	logLevel       = "info"
	configPath     = config.DefaultPath
	rotationFlag   = ""
	force          = false
	dryRun         = false
	pointercalFile = ""
	xorgConfFile   = ""
)

// Replaced in tests.
var geteuid = os.Geteuid

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func main() {
	cmd := NewCommand()
	err := cmd.Execute()
	os.Exit(exitCode(err))
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "touchcal",
		Short: "touchcal sets the PiTFT touchscreen calibration for the current screen rotation",
		Long: `touchcal sets the PiTFT touchscreen calibration for both /etc/pointercal and
X.Org based on the current screen rotation.

The rotation is read from the rotate= option of the fbtft_device module
configuration unless --rotation is given. You must run this command as root.`,
		Version:      version.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Nothing is read before we know we may write.
			if err := touchcal.EnsureRoot(cmd.OutOrStdout(), geteuid); err != nil {
				return err
			}

			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}
			if pointercalFile != "" {
				conf.SetPointercalFile(pointercalFile)
			}
			if xorgConfFile != "" {
				conf.SetXorgConfFile(xorgConfFile)
			}
			logrus.WithFields(conf.LogrusFields()).Debug("config loaded")

			err = touchcal.Run(touchcal.Options{
				Rotation:       rotationFlag,
				RotationSet:    cmd.Flags().Changed("rotation"),
				Force:          force,
				DryRun:         dryRun,
				PointercalFile: conf.PointercalFile(),
				XorgConfFile:   conf.XorgConfFile(),
				Detector:       detect.NewModprobe(conf.ModprobeBinary(), conf.ProductToken()),
				In:             cmd.InOrStdin(),
				Out:            cmd.OutOrStdout(),
				Geteuid:        geteuid,
			})
			if errors.Is(err, touchcal.ErrRotationUnknown) || errors.Is(err, touchcal.ErrUnsupportedRotation) {
				cmd.Print(cmd.UsageString())
			}

			return err
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s %s\n", version.Version, version.GitCommit))

	f := cmd.Flags()
	f.StringVarP(&rotationFlag, "rotation", "r", "", "set calibration for specified screen rotation (0, 90, 180 or 270)")
	f.BoolVarP(&force, "force", "f", false, "update calibration without prompting for confirmation")
	f.BoolVar(&dryRun, "dry-run", false, "show the current and new calibration without updating anything")
	f.StringVar(&pointercalFile, "pointercal-file", "", "tslib calibration file path, overrides the config file (default "+calibration.DefaultPointercalFile+")")
	f.StringVar(&xorgConfFile, "xorg-file", "", "X.Org calibration file path, overrides the config file (default "+calibration.DefaultXorgConfFile+")")

	_ = cmd.RegisterFlagCompletionFunc("rotation", cobra.FixedCompletions(rotation.Names(), cobra.ShellCompDirectiveNoFileComp))

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", config.DefaultPath, "config file path")

	return cmd
}
