package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pitft-tools/touchcal/pkg/calibration"
	"github.com/pitft-tools/touchcal/pkg/detect"
	"github.com/pitft-tools/touchcal/pkg/utils/ptr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchcal.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name           string
		content        *string
		wantPointercal string
		wantXorg       string
		wantToken      string
		wantModprobe   string
		wantErr        bool
	}{
		{
			name:           "missing file uses defaults",
			wantPointercal: calibration.DefaultPointercalFile,
			wantXorg:       calibration.DefaultXorgConfFile,
			wantToken:      detect.DefaultProductToken,
			wantModprobe:   detect.DefaultModprobeBinary,
		},
		{
			name:           "empty file uses defaults",
			content:        ptr.To("  \n"),
			wantPointercal: calibration.DefaultPointercalFile,
			wantXorg:       calibration.DefaultXorgConfFile,
			wantToken:      detect.DefaultProductToken,
			wantModprobe:   detect.DefaultModprobeBinary,
		},
		{
			name:           "partial file",
			content:        ptr.To(`{"pointercalFile": "/tmp/pointercal", "productToken": "name=pitft"}`),
			wantPointercal: "/tmp/pointercal",
			wantXorg:       calibration.DefaultXorgConfFile,
			wantToken:      "name=pitft",
			wantModprobe:   detect.DefaultModprobeBinary,
		},
		{
			name:           "empty strings fall back to defaults",
			content:        ptr.To(`{"xorgConfFile": ""}`),
			wantPointercal: calibration.DefaultPointercalFile,
			wantXorg:       calibration.DefaultXorgConfFile,
			wantToken:      detect.DefaultProductToken,
			wantModprobe:   detect.DefaultModprobeBinary,
		},
		{
			name: "full file",
			content: ptr.To(`{
  "pointercalFile": "/a/pointercal",
  "xorgConfFile": "/b/99-calibration.conf",
  "productToken": "name=adafruit22",
  "modprobeBinary": "/sbin/modprobe"
}`),
			wantPointercal: "/a/pointercal",
			wantXorg:       "/b/99-calibration.conf",
			wantToken:      "name=adafruit22",
			wantModprobe:   "/sbin/modprobe",
		},
		{
			name:    "malformed json",
			content: ptr.To(`{"pointercalFile": `),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.json")
			if tt.content != nil {
				path = writeConfig(t, *tt.content)
			}

			f, err := NewFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := f.PointercalFile(); got != tt.wantPointercal {
				t.Errorf("PointercalFile() = %q, want %q", got, tt.wantPointercal)
			}
			if got := f.XorgConfFile(); got != tt.wantXorg {
				t.Errorf("XorgConfFile() = %q, want %q", got, tt.wantXorg)
			}
			if got := f.ProductToken(); got != tt.wantToken {
				t.Errorf("ProductToken() = %q, want %q", got, tt.wantToken)
			}
			if got := f.ModprobeBinary(); got != tt.wantModprobe {
				t.Errorf("ModprobeBinary() = %q, want %q", got, tt.wantModprobe)
			}
		})
	}
}

func TestSettersOverrideFile(t *testing.T) {
	f, err := NewFile(writeConfig(t, `{"pointercalFile": "/from/file"}`))
	if err != nil {
		t.Fatal(err)
	}

	f.SetPointercalFile("/from/flag")
	f.SetXorgConfFile("/from/flag.conf")

	if got := f.PointercalFile(); got != "/from/flag" {
		t.Errorf("PointercalFile() = %q, want /from/flag", got)
	}
	if got := f.XorgConfFile(); got != "/from/flag.conf" {
		t.Errorf("XorgConfFile() = %q, want /from/flag.conf", got)
	}
}

func TestLogrusFields(t *testing.T) {
	f, err := NewFile(writeConfig(t, `{"productToken": "name=pitft"}`))
	if err != nil {
		t.Fatal(err)
	}
	fields := f.LogrusFields()
	if fields["productToken"] != "name=pitft" {
		t.Errorf("LogrusFields()[productToken] = %v, want name=pitft", fields["productToken"])
	}
	if fields["xorgConfFile"] != calibration.DefaultXorgConfFile {
		t.Errorf("LogrusFields()[xorgConfFile] = %v, want default", fields["xorgConfFile"])
	}
}
