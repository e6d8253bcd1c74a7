package vm_test

import (
	"context"
	"testing"

	"github.com/moink/AoC2016/vm"
)

// BenchmarkRun_Countdown executes a tight dec/jnz loop of 100k iterations.
func BenchmarkRun_Countdown(b *testing.B) {
	prog := vm.MustParse("dec a\njnz a -1")
	m, err := vm.New(toySet(), "a", vm.WithRegister("a", 100_000))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Load(prog)
		if _, err := m.Run(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := "cpy 41 a\ninc a\ninc a\ndec a\njnz a 2\ndec a\njio a, +2\n"
	for i := 0; i < b.N; i++ {
		if _, err := vm.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}
