// Package vm defines the instruction, program, dispatch-table and option
// types of the register-machine framework.
package vm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for machine construction and execution.
var (
	// ErrUnknownInstruction is returned when a mnemonic has no handler. Fatal.
	ErrUnknownInstruction = errors.New("vm: unknown instruction")

	// ErrArity is returned when an instruction has the wrong number of arguments.
	ErrArity = errors.New("vm: wrong number of arguments")

	// ErrOperand is returned for an empty or otherwise unusable operand.
	ErrOperand = errors.New("vm: malformed operand")

	// ErrInvalidRegister is returned when a write targets a literal or empty name.
	ErrInvalidRegister = errors.New("vm: invalid register name")

	// ErrStepLimit is returned when a run executes more instructions than WithStepLimit allows.
	ErrStepLimit = errors.New("vm: step limit exceeded")

	// ErrHalt may be returned by handlers and output hooks to stop a run
	// cleanly; Run reports it as normal termination.
	ErrHalt = errors.New("vm: halt")

	// ErrParse is returned when program text cannot be parsed.
	ErrParse = errors.New("vm: parse error")

	// ErrOptionViolation is returned when New receives invalid arguments or options.
	ErrOptionViolation = errors.New("vm: invalid option supplied")
)

// Instruction is one decoded program line: a mnemonic and its raw operands.
// Operands stay strings; handlers decide whether each is a literal or a
// register name.
type Instruction struct {
	Op   string
	Args []string
}

// String renders the instruction as whitespace-separated tokens.
func (in Instruction) String() string {
	if len(in.Args) == 0 {
		return in.Op
	}
	return in.Op + " " + strings.Join(in.Args, " ")
}

// Clone returns a deep copy of the instruction.
func (in Instruction) Clone() Instruction {
	return Instruction{Op: in.Op, Args: append([]string(nil), in.Args...)}
}

// Program is an ordered, mutable sequence of instructions.
type Program []Instruction

// Clone returns a deep copy, so a machine can own and modify its program.
func (p Program) Clone() Program {
	out := make(Program, len(p))
	for i, in := range p {
		out[i] = in.Clone()
	}
	return out
}

// String renders one instruction per line.
func (p Program) String() string {
	lines := make([]string, len(p))
	for i, in := range p {
		lines[i] = in.String()
	}
	return strings.Join(lines, "\n")
}

// Registers maps register names to values. Reading a register that was
// never written yields 0.
type Registers map[string]int

// Get returns the value of name, 0 if unset.
func (r Registers) Get(name string) int { return r[name] }

// HandlerFunc executes one instruction. It may read and write registers,
// move the instruction pointer (see Machine.Jump) or edit the program.
type HandlerFunc func(m *Machine, args []string) error

// Handler binds a mnemonic's implementation to the number of operands it takes.
type Handler struct {
	Arity int
	Fn    HandlerFunc
}

// InstructionSet is a dialect's dispatch table from mnemonic to handler.
type InstructionSet map[string]Handler

// Arity returns the operand count declared for op.
func (s InstructionSet) Arity(op string) (int, bool) {
	h, ok := s[op]
	return h.Arity, ok
}

// Option configures a Machine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the initial register assignment and run-time limits.
type Options struct {
	// Registers is the initial register assignment; it is copied.
	Registers map[string]int

	// StepLimit, if > 0, aborts Run with ErrStepLimit after that many
	// executed instructions.
	StepLimit int

	// OnOutput is called for every value a dialect emits. Returning
	// ErrHalt stops the run cleanly; other errors abort it.
	OnOutput func(value int) error

	err error
}

// DefaultOptions returns empty registers, no step limit and a no-op output hook.
func DefaultOptions() Options {
	return Options{
		Registers: map[string]int{},
		OnOutput:  func(int) error { return nil },
	}
}

// WithRegisters merges an initial register assignment.
func WithRegisters(regs map[string]int) Option {
	return func(o *Options) {
		for name, v := range regs {
			if name == "" || isLiteral(name) {
				o.err = fmt.Errorf("%w: register name %q", ErrOptionViolation, name)
				return
			}
			o.Registers[name] = v
		}
	}
}

// WithRegister sets one initial register value.
func WithRegister(name string, value int) Option {
	return WithRegisters(map[string]int{name: value})
}

// WithStepLimit bounds the number of executed instructions.
//
//	n > 0: limit to n instructions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithOnOutput registers the output hook.
func WithOnOutput(fn func(value int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOutput = fn
		}
	}
}
