//go:build !lognone

package mediacomp

import (
	"log/slog"
	"os"
)

func init() {
	LogOutput = os.Stdout
	log = slog.Default()
}
