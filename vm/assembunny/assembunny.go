// Package assembunny implements the register dialect with the mnemonics
// cpy, inc, dec, jnz, tgl and out. Its result is register a.
//
// tgl rewrites the instruction at IP+offset in place. One-operand
// instructions become dec if they were inc and inc otherwise; two-operand
// instructions become cpy if they were jnz and jnz otherwise. A target
// outside the program is ignored. Because toggling can produce
// instructions such as "cpy 1 2" or "inc 5", every write to a literal
// operand is skipped instead of failing.
package assembunny

import (
	"context"

	"github.com/moink/AoC2016/vm"
)

// ReturnRegister is the register whose value a program computes.
const ReturnRegister = "a"

// InstructionSet returns a fresh dispatch table for the dialect.
func InstructionSet() vm.InstructionSet {
	return vm.InstructionSet{
		"cpy": {Arity: 2, Fn: cpy},
		"inc": {Arity: 1, Fn: add(1)},
		"dec": {Arity: 1, Fn: add(-1)},
		"jnz": {Arity: 2, Fn: jnz},
		"tgl": {Arity: 1, Fn: tgl},
		"out": {Arity: 1, Fn: out},
	}
}

// New returns a machine for the dialect.
func New(opts ...vm.Option) (*vm.Machine, error) {
	return vm.New(InstructionSet(), ReturnRegister, opts...)
}

// Run loads prog into a fresh machine, runs it and returns register a.
func Run(ctx context.Context, prog vm.Program, opts ...vm.Option) (int, error) {
	m, err := New(opts...)
	if err != nil {
		return 0, err
	}
	m.Load(prog)
	return m.Run(ctx)
}

func cpy(m *vm.Machine, args []string) error {
	if !m.IsRegister(args[1]) {
		return nil
	}
	v, err := m.Value(args[0])
	if err != nil {
		return err
	}
	return m.Set(args[1], v)
}

func add(delta int) vm.HandlerFunc {
	return func(m *vm.Machine, args []string) error {
		if !m.IsRegister(args[0]) {
			return nil
		}
		return m.Set(args[0], m.Get(args[0])+delta)
	}
}

func jnz(m *vm.Machine, args []string) error {
	v, err := m.Value(args[0])
	if err != nil || v == 0 {
		return err
	}
	off, err := m.Value(args[1])
	if err != nil {
		return err
	}
	m.Jump(off)
	return nil
}

func tgl(m *vm.Machine, args []string) error {
	off, err := m.Value(args[0])
	if err != nil {
		return err
	}
	in, ok := m.Instruction(m.IP + off)
	if !ok {
		return nil
	}
	arity, known := m.Arity(in.Op)
	if !known {
		arity = len(in.Args)
	}
	switch arity {
	case 1:
		if in.Op == "inc" {
			in.Op = "dec"
		} else {
			in.Op = "inc"
		}
	case 2:
		if in.Op == "jnz" {
			in.Op = "cpy"
		} else {
			in.Op = "jnz"
		}
	}
	return nil
}

func out(m *vm.Machine, args []string) error {
	v, err := m.Value(args[0])
	if err != nil {
		return err
	}
	return m.Emit(v)
}
