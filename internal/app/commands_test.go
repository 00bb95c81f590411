package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

func mediaTree(t *testing.T, withFirmware bool) string {
	t.Helper()
	root := t.TempDir()
	board := filepath.Join(root, "BOARD")
	if err := os.Mkdir(board, 0o755); err != nil {
		t.Fatal(err)
	}
	if withFirmware {
		if err := os.WriteFile(filepath.Join(board, "FIRMWARE.CUR"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func run(cmd *cobra.Command, opts *Options, args ...string) (string, string, error) {
	root := &cobra.Command{Use: "rearm-upload", SilenceUsage: true, SilenceErrors: true}
	opts.AddFlags(root.PersistentFlags())
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveCommand(t *testing.T) {
	root := mediaTree(t, true)
	opts := &Options{}

	out, _, err := run(NewResolveCommand(opts), opts, "resolve", "--os", "linux", "--media-root", root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(root, "BOARD"); got != want {
		t.Errorf("resolve printed %q, want %q", got, want)
	}
}

func TestResolveCommand_JSON(t *testing.T) {
	root := mediaTree(t, true)
	opts := &Options{}

	out, _, err := run(NewResolveCommand(opts), opts, "resolve", "--json", "--os", "linux", "--media-root", root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var got struct {
		Path        string `json:"path"`
		Match       string `json:"match"`
		UploadFlags string `json:"upload_flags"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Match != "file" || got.UploadFlags != "-P$UPLOAD_PORT" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestResolveCommand_NotFound(t *testing.T) {
	root := mediaTree(t, false)
	opts := &Options{}

	_, _, err := run(NewResolveCommand(opts), opts, "resolve", "--os", "linux", "--media-root", root)
	if err == nil {
		t.Fatal("resolve succeeded without a matching drive")
	}
}

func TestResolveCommand_LabelOverride(t *testing.T) {
	root := mediaTree(t, false)
	opts := &Options{}

	out, _, err := run(NewResolveCommand(opts), opts, "resolve", "--os", "darwin", "--media-root", root, "--label", "BOARD")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(root, "BOARD"); got != want {
		t.Errorf("resolve printed %q, want %q", got, want)
	}
}

func TestHookCommand(t *testing.T) {
	root := mediaTree(t, true)
	t.Setenv("PIOENV", "LPC1768")
	opts := &Options{}

	out, stderr, err := run(NewHookCommand(opts), opts, "hook", "--os", "linux", "--media-root", root)
	if err != nil {
		t.Fatalf("hook: %v", err)
	}
	want := "UPLOAD_FLAGS='-P$UPLOAD_PORT'\nUPLOAD_PORT='" + filepath.Join(root, "BOARD") + "'\n"
	if out != want {
		t.Errorf("hook stdout = %q, want %q", out, want)
	}
	if !strings.Contains(stderr, "Upload disk:") {
		t.Errorf("hook stderr = %q", stderr)
	}
}

func TestHookCommand_FailureNeverErrors(t *testing.T) {
	t.Setenv("PIOENV", "LPC1768")
	opts := &Options{}

	missing := filepath.Join(t.TempDir(), "absent")
	out, stderr, err := run(NewHookCommand(opts), opts, "hook", "--os", "linux", "--media-root", missing)
	if err != nil {
		t.Fatalf("hook returned %v", err)
	}
	if out != "" {
		t.Errorf("hook printed assignments on failure: %q", out)
	}
	if !strings.Contains(stderr, "Unable to find destination disk") || !strings.Contains(stderr, "LPC1768/firmware.bin") {
		t.Errorf("hook stderr = %q", stderr)
	}
}

func TestHookCommand_InvalidConfig(t *testing.T) {
	opts := &Options{}
	_, stderr, err := run(NewHookCommand(opts), opts, "hook", "--config", filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("hook returned %v", err)
	}
	if !strings.Contains(stderr, "Unable to find destination disk") {
		t.Errorf("hook stderr = %q", stderr)
	}
}

func TestDrivesCommand(t *testing.T) {
	orig := listDevices
	t.Cleanup(func() { listDevices = orig })
	listDevices = func() ([]platform.Device, error) {
		return []platform.Device{{Name: "REARM", Path: "/dev/sdb1", MountPoint: "/media/dev/REARM", FSType: "vfat", Removable: true}}, nil
	}

	opts := &Options{}
	out, _, err := run(NewDrivesCommand(), opts, "drives")
	if err != nil {
		t.Fatalf("drives: %v", err)
	}
	if want := "REARM\t/dev/sdb1\t/media/dev/REARM\tvfat\ttrue\n"; out != want {
		t.Errorf("drives printed %q, want %q", out, want)
	}
}
