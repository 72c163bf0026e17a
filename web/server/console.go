package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderLogger implements core.Logger by tagging renderer output with the
// render it belongs to
type RenderLogger struct {
	renderID string
	out      *log.Logger
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string, out *log.Logger) core.Logger {
	return &RenderLogger{renderID: renderID, out: out}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.out.Printf("[%s] %s", rl.renderID, message)
}
