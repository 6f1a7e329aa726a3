package filter

import (
	"os"
	"os/exec"
	"strings"

	"github.com/npillmayer/markout/core"
	"github.com/npillmayer/schuko"
)

// Run pipes input through an external command and returns the command's
// standard output, which may be empty. command is split at whitespace;
// the first field is the binary, the rest are arguments, and the path of
// a temporary file holding input is appended as the final argument.
//
// Run blocks until the command completes. There is no timeout; a hanging
// command hangs the caller. The temporary file is removed before Run
// returns, on every path.
func Run(command string, input string) (string, error) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return "", core.Error(core.EINVALID, "empty filter command")
	}
	tmpfile, err := os.CreateTemp("", "markout-filter-*")
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot create temp file for filter input")
	}
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.WriteString(input)
	if cerr := tmpfile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot write filter input to %s", tmpfile.Name())
	}
	args = append(args, tmpfile.Name())
	tracer().Debugf("running filter command %v", args)
	out, err := exec.Command(args[0], args[1:]...).Output()
	if err != nil {
		return "", core.WrapError(err, core.EEXEC, "filter command %q failed", command)
	}
	return string(out), nil
}

// RunWith resolves a filter command from configuration, then runs it on
// input. Unset configuration keys are an error carrying code EMISSING.
func RunWith(conf schuko.Configuration, key string, input string) (string, error) {
	command := conf.GetString(key)
	if command == "" {
		tracer().Infof("no filter configured: key %q should hold a command", key)
		return "", core.Error(core.EMISSING, "no filter command configured under key %q", key)
	}
	return Run(command, input)
}
