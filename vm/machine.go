package vm

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/moink/AoC2016/internal/logging"
)

// Machine is a register machine executing one Program with one dialect.
// A Machine is not safe for concurrent use.
type Machine struct {
	// Registers is the live register file. Handlers normally go through
	// Value and Set instead of touching it directly.
	Registers Registers

	// IP is the index of the instruction about to execute.
	IP int

	set            InstructionSet
	returnRegister string
	program        Program
	initial        Registers
	opts           Options

	output []int
	steps  int
	halted bool

	log   logrus.FieldLogger
	trace bool
}

// New builds a machine for the dialect described by set. The value of
// returnRegister is what Run reports when the program terminates.
func New(set InstructionSet, returnRegister string, opts ...Option) (*Machine, error) {
	if len(set) == 0 {
		return nil, errors.Wrap(ErrOptionViolation, "empty instruction set")
	}
	if returnRegister == "" || isLiteral(returnRegister) {
		return nil, errors.Wrapf(ErrInvalidRegister, "return register %q", returnRegister)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := &Machine{
		set:            set,
		returnRegister: returnRegister,
		initial:        Registers(o.Registers),
		opts:           o,
		log:            logrus.StandardLogger(),
	}
	m.reset()
	return m, nil
}

// Load copies p into the machine and rewinds it: IP 0, registers back to
// the initial assignment, output cleared. Later edits to p do not affect
// the machine and vice versa.
func (m *Machine) Load(p Program) {
	m.program = p.Clone()
	m.reset()
}

func (m *Machine) reset() {
	m.Registers = make(Registers, len(m.initial))
	for name, v := range m.initial {
		m.Registers[name] = v
	}
	m.IP = 0
	m.output = nil
	m.steps = 0
	m.halted = false
}

// Run executes instructions until the instruction pointer leaves the
// program, a handler halts the machine, or an error occurs. It returns the
// value of the return register in every case.
func (m *Machine) Run(ctx context.Context) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	m.log = logging.Logger(ctx).WithField("return_register", m.returnRegister)
	m.trace = traceEnabled(m.log)

	for !m.Done() {
		select {
		case <-ctx.Done():
			return m.Result(), ctx.Err()
		default:
		}
		if m.opts.StepLimit > 0 && m.steps >= m.opts.StepLimit {
			return m.Result(), errors.Wrapf(ErrStepLimit, "%d instructions executed, ip %d", m.steps, m.IP)
		}
		if err := m.Step(); err != nil {
			if errors.Is(err, ErrHalt) {
				m.halted = true
				break
			}
			return m.Result(), err
		}
	}

	m.log.WithFields(logrus.Fields{
		"steps":  m.steps,
		"ip":     m.IP,
		"result": m.Result(),
	}).Debug("vm: program terminated")

	return m.Result(), nil
}

// Step executes the instruction at IP and then advances IP by one. It is a
// no-op once the machine is Done.
func (m *Machine) Step() error {
	if m.Done() {
		return nil
	}
	ip := m.IP
	in := m.program[ip]
	h, ok := m.set[in.Op]
	if !ok {
		return errors.Wrapf(ErrUnknownInstruction, "ip %d: %q", ip, in.Op)
	}
	if len(in.Args) != h.Arity {
		return errors.Wrapf(ErrArity, "ip %d: %s takes %d argument(s), got %d", ip, in.Op, h.Arity, len(in.Args))
	}
	for _, arg := range in.Args {
		if err := checkOperand(arg); err != nil {
			return errors.Wrapf(err, "ip %d: %s", ip, in)
		}
	}
	if m.trace {
		m.log.WithFields(logrus.Fields{
			"ip":        ip,
			"step":      m.steps,
			"registers": m.Registers,
		}).Trace(in.String())
	}
	if err := h.Fn(m, in.Args); err != nil {
		if errors.Is(err, ErrHalt) {
			m.steps++
			return err
		}
		return errors.Wrapf(err, "ip %d: %s", ip, in)
	}
	m.IP++
	m.steps++
	return nil
}

// Done reports whether the machine has halted or IP is outside the program.
func (m *Machine) Done() bool {
	return m.halted || m.IP < 0 || m.IP >= len(m.program)
}

// Result returns the current value of the return register.
func (m *Machine) Result() int { return m.Registers.Get(m.returnRegister) }

// ReturnRegister returns the name of the register Run reports.
func (m *Machine) ReturnRegister() string { return m.returnRegister }

// Steps returns the number of instructions executed since the last Load.
func (m *Machine) Steps() int { return m.steps }

// Value resolves an operand: an integer literal yields itself, anything
// else is read as a register name. A literal that does not fit in an int
// yields ErrOperand.
func (m *Machine) Value(operand string) (int, error) {
	if err := checkOperand(operand); err != nil {
		return 0, err
	}
	if isLiteral(operand) {
		return strconv.Atoi(operand)
	}
	return m.Registers.Get(operand), nil
}

// IsRegister reports whether operand names a register rather than a
// literal. Anything spelled as an integer is a literal, in range or not.
func (m *Machine) IsRegister(operand string) bool {
	return operand != "" && !isLiteral(operand)
}

// Get returns the value of a register, 0 if it was never written.
func (m *Machine) Get(name string) int { return m.Registers.Get(name) }

// Set writes a register. Literal or empty targets yield ErrInvalidRegister.
func (m *Machine) Set(name string, value int) error {
	if !m.IsRegister(name) {
		return errors.Wrapf(ErrInvalidRegister, "%q", name)
	}
	m.Registers[name] = value
	return nil
}

// Jump moves execution offset instructions relative to the current one.
// The run loop's unconditional increment completes the jump, so Jump
// stores IP + offset - 1.
func (m *Machine) Jump(offset int) { m.IP += offset - 1 }

// Arity returns the operand count the dialect declares for op.
func (m *Machine) Arity(op string) (int, bool) { return m.set.Arity(op) }

// Instruction returns a pointer to the i-th instruction of the loaded
// program so handlers can rewrite it in place. ok is false if i is out of
// range.
func (m *Machine) Instruction(i int) (in *Instruction, ok bool) {
	if i < 0 || i >= len(m.program) {
		return nil, false
	}
	return &m.program[i], true
}

// Len returns the number of instructions in the loaded program.
func (m *Machine) Len() int { return len(m.program) }

// Program returns a copy of the loaded program, including any edits made
// by self-modifying instructions.
func (m *Machine) Program() Program { return m.program.Clone() }

// Emit appends value to the output and passes it to the output hook.
// The hook's error, ErrHalt included, is returned unchanged.
func (m *Machine) Emit(value int) error {
	m.output = append(m.output, value)
	return m.opts.OnOutput(value)
}

// Output returns a copy of everything emitted since the last Load.
func (m *Machine) Output() []int { return append([]int(nil), m.output...) }

// Halt stops the machine after the current instruction.
func (m *Machine) Halt() { m.halted = true }

// isLiteral reports whether s is spelled as an optionally signed integer.
func isLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// checkOperand rejects empty operands and integer literals outside the
// range of int.
func checkOperand(s string) error {
	if s == "" {
		return ErrOperand
	}
	if isLiteral(s) {
		if _, err := strconv.Atoi(s); err != nil {
			return errors.Wrapf(ErrOperand, "%q out of range", s)
		}
	}
	return nil
}

func traceEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.TraceLevel)
	case *logrus.Entry:
		return v.Logger != nil && v.Logger.IsLevelEnabled(logrus.TraceLevel)
	}
	return false
}
