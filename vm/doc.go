// Package vm is a small register-machine interpreter framework. A dialect
// supplies an InstructionSet (mnemonic → Handler with declared arity) and
// the name of the register whose value is the program's result; the
// framework supplies registers, the instruction pointer, the run loop and
// a text parser.
//
// Execution model
//
//   - Registers are named integers; a register never written reads as 0.
//   - IP starts at 0. Each step dispatches Program[IP] to its handler, then
//     advances IP by one unconditionally. Handlers that jump call
//     Machine.Jump(offset), which stores IP+offset-1 so the increment lands
//     on the target.
//   - The run ends normally when IP leaves [0, len(Program)), when a handler
//     calls Halt, or when a handler or the output hook returns ErrHalt.
//   - The machine owns its copy of the program. Self-modifying dialects
//     rewrite it in place through Machine.Instruction.
//
// Usage
//
//	prog, err := vm.ParseProgram(f)
//	m, err := vm.New(assembunny.InstructionSet(), "a", vm.WithRegister("c", 1))
//	m.Load(prog)
//	a, err := m.Run(ctx)
//
// Errors
//
//   - ErrUnknownInstruction  mnemonic missing from the dispatch table.
//   - ErrArity               operand count differs from the declared arity.
//   - ErrOperand             empty operand or integer literal out of range.
//   - ErrInvalidRegister     write to a literal or empty name.
//   - ErrStepLimit           WithStepLimit exceeded.
//   - ErrParse               malformed program text.
//   - context errors         when the context passed to Run is done.
//
// Tracing: with a logrus logger at Trace level in the context (see
// internal/logging), every executed instruction is logged together with
// IP and the register file.
package vm
