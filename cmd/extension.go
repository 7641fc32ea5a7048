package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

const (
	EnvConfig   = "NFP_CONFIG"
	EnvData     = "NFP_DATA"
	EnvWorkers  = "NFP_WORKERS"
	EnvVerbose  = "NFP_VERBOSE"
	EnvCurrency = "NFP_CURRENCY"
)

// extensionEnv returns the environment passed to extensions: the current one
// plus the effective global options.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvConfig+"="+*configFile)
	env = append(env, EnvData+"="+config.Data)
	env = append(env, EnvWorkers+"="+strconv.Itoa(config.Workers))
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	env = append(env, EnvCurrency+"="+config.Currency)
	return env
}

// RunExtension attempts to find and execute an external nfp-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "nfp-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found", zap.String("name", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
