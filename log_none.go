//go:build lognone

package mediacomp

import "io"

func init() {
	LogOutput = io.Discard
	log = nilLog{}
}

type nilLog struct{}

func (nilLog) Info(string, ...any)  {}
func (nilLog) Warn(string, ...any)  {}
func (nilLog) Error(string, ...any) {}
