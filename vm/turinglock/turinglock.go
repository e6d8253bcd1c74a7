// Package turinglock implements the six-instruction lock dialect:
//
//	hlf r       r = r / 2
//	tpl r       r = r * 3
//	inc r       r = r + 1
//	jmp off     jump by off
//	jie r, off  jump by off if r is even
//	jio r, off  jump by off if r is exactly one
//
// Programs report register b.
package turinglock

import (
	"context"

	"github.com/moink/AoC2016/vm"
)

// ReturnRegister is the register whose value a program computes.
const ReturnRegister = "b"

// InstructionSet returns a fresh dispatch table for the dialect.
func InstructionSet() vm.InstructionSet {
	return vm.InstructionSet{
		"hlf": {Arity: 1, Fn: update(func(v int) int { return v / 2 })},
		"tpl": {Arity: 1, Fn: update(func(v int) int { return v * 3 })},
		"inc": {Arity: 1, Fn: update(func(v int) int { return v + 1 })},
		"jmp": {Arity: 1, Fn: jmp},
		"jie": {Arity: 2, Fn: jumpIf(func(v int) bool { return v%2 == 0 })},
		"jio": {Arity: 2, Fn: jumpIf(func(v int) bool { return v == 1 })},
	}
}

// New returns a machine for the dialect.
func New(opts ...vm.Option) (*vm.Machine, error) {
	return vm.New(InstructionSet(), ReturnRegister, opts...)
}

// Run loads prog into a fresh machine, runs it and returns register b.
func Run(ctx context.Context, prog vm.Program, opts ...vm.Option) (int, error) {
	m, err := New(opts...)
	if err != nil {
		return 0, err
	}
	m.Load(prog)
	return m.Run(ctx)
}

func update(fn func(int) int) vm.HandlerFunc {
	return func(m *vm.Machine, args []string) error {
		return m.Set(args[0], fn(m.Get(args[0])))
	}
}

func jmp(m *vm.Machine, args []string) error {
	off, err := m.Value(args[0])
	if err != nil {
		return err
	}
	m.Jump(off)
	return nil
}

func jumpIf(cond func(int) bool) vm.HandlerFunc {
	return func(m *vm.Machine, args []string) error {
		if !m.IsRegister(args[0]) {
			return vm.ErrInvalidRegister
		}
		if !cond(m.Get(args[0])) {
			return nil
		}
		return jmp(m, args[1:])
	}
}
