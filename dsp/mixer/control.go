package mixer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-mixeq/dsp/core"
)

var (
	// ErrUnknownParam is returned for a command naming no known parameter.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrMalformedCommand is returned for a command line that is not
	// exactly "<param> <value>" with a numeric value.
	ErrMalformedCommand = errors.New("malformed command")
)

// Param identifies one field of Params in a control command.
type Param int

const (
	ParamGain1 Param = iota
	ParamGain2
	ParamPan
	ParamMaster
	ParamBassL
	ParamTrebleL
	ParamBassR
	ParamTrebleR
)

var paramNames = [...]string{
	ParamGain1:   "g1",
	ParamGain2:   "g2",
	ParamPan:     "pan",
	ParamMaster:  "master",
	ParamBassL:   "bl",
	ParamTrebleL: "tl",
	ParamBassR:   "br",
	ParamTrebleR: "tr",
}

// String returns the command keyword of the parameter.
func (p Param) String() string {
	if p < 0 || int(p) >= len(paramNames) {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// Command sets one parameter to a value.
type Command struct {
	Param Param
	Value float64
}

// ParseCommand parses a control line of the form "<param> <value>", for
// example "bl 1.5". Keywords are case-insensitive and surrounding
// whitespace is ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("mixer: %w: %q", ErrMalformedCommand, line)
	}

	name := strings.ToLower(fields[0])
	param := Param(-1)
	for i, n := range paramNames {
		if n == name {
			param = Param(i)
			break
		}
	}
	if param < 0 {
		return Command{}, fmt.Errorf("mixer: %w: %q", ErrUnknownParam, fields[0])
	}

	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Command{}, fmt.Errorf("mixer: %w: %q: %w", ErrMalformedCommand, line, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Command{}, fmt.Errorf("mixer: %w: non-finite value in %q", ErrMalformedCommand, line)
	}
	return Command{Param: param, Value: v}, nil
}

// Apply returns a copy of p with the command applied. Gains and band
// weights are clamped at zero and pan to [-1, 1]; this is the only place
// parameters are range-limited.
func (c Command) Apply(p Params) Params {
	v := max(c.Value, 0)
	switch c.Param {
	case ParamGain1:
		p.Gain1 = v
	case ParamGain2:
		p.Gain2 = v
	case ParamPan:
		p.Pan = core.Clamp(c.Value, -1, 1)
	case ParamMaster:
		p.Master = v
	case ParamBassL:
		p.BassL = v
	case ParamTrebleL:
		p.TrebleL = v
	case ParamBassR:
		p.BassR = v
	case ParamTrebleR:
		p.TrebleR = v
	}
	return p
}

// Controller holds the current Params for a running pipeline. Updates from
// a control goroutine and snapshots from the audio goroutine may run
// concurrently; the audio side never blocks.
type Controller struct {
	params atomic.Pointer[Params]
}

// NewController returns a controller holding initial.
func NewController(initial Params) *Controller {
	c := &Controller{}
	c.Store(initial)
	return c
}

// Snapshot returns the current parameters.
func (c *Controller) Snapshot() Params {
	return *c.params.Load()
}

// Store replaces the parameters wholesale, without clamping.
func (c *Controller) Store(p Params) {
	c.params.Store(&p)
}

// Apply applies cmd to the current parameters and returns the result.
func (c *Controller) Apply(cmd Command) Params {
	for {
		old := c.params.Load()
		next := cmd.Apply(*old)
		if c.params.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// Exec parses and applies one control line.
func (c *Controller) Exec(line string) (Params, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return c.Snapshot(), err
	}
	return c.Apply(cmd), nil
}
