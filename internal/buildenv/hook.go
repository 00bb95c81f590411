package buildenv

import (
	"fmt"
	"io"
	"path"

	"github.com/golang/glog"

	"github.com/gajzzs/rearm-upload/internal/resolver"
)

const uploadDocsURL = "https://docs.platformio.org/en/latest/projectconf/section_env_upload.html"

// Apply copies a successful resolution into env. Upload flags are written
// only when the result asks for them.
func Apply(env Env, res resolver.Result, uploadFlags string) {
	env.Replace(KeyUploadPort, res.Path)
	if res.SetUploadFlags {
		env.Replace(KeyUploadFlags, uploadFlags)
	}
}

// Hook is the pre-action bound to the build tool's upload step.
type Hook struct {
	Enumerator  resolver.DriveEnumerator
	Target      resolver.Target
	UploadFlags string
	BuildDir    string
	Out         io.Writer
}

// BeforeUpload resolves the target drive and applies it to env. Every
// failure, panics included, ends as a printed diagnostic with env
// untouched. It reports whether env was updated.
func (h *Hook) BeforeUpload(env Env) (applied bool) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("drive resolution panicked: %v", r)
			h.printError(env, fmt.Sprint(r))
			applied = false
		}
	}()

	res, err := h.Enumerator.Resolve(h.Target)
	if err != nil {
		glog.V(1).Infof("resolution failed: %v", err)
		h.printError(env, err.Error())
		return false
	}

	Apply(env, res, h.UploadFlags)
	fmt.Fprintf(h.Out, "\nUpload disk: %s\n\n", res.Path)
	return true
}

func (h *Hook) printError(env Env, cause string) {
	fmt.Fprint(h.Out, Diagnostic(cause, h.BuildDir, env.Get(KeyEnvName)))
}

// Diagnostic is the advisory text shown when no destination disk is found.
func Diagnostic(cause, buildDir, envName string) string {
	firmware := path.Join(buildDir, envName, "firmware.bin")
	return fmt.Sprintf("\nUnable to find destination disk (%s)\n"+
		"Please select it in platformio.ini using the upload_port keyword (%s) "+
		"or copy the firmware (%s) manually to the appropriate disk\n",
		cause, uploadDocsURL, firmware)
}
