package vm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

// line is the grammar of a single instruction: a mnemonic followed by
// operands separated by whitespace or commas.
type line struct {
	Op   string   `parser:"@Ident"`
	Args []string `parser:"( @( Int | Ident ) Comma? )*"`
}

var (
	lineParser = participle.MustBuild[line](participle.Lexer(asmLexer))
	asmSymbols = asmLexer.Symbols()
)

func isOperandToken(tok lexer.Token) bool {
	return tok.Type == asmSymbols["Int"] || tok.Type == asmSymbols["Ident"]
}

// checkSeparators rejects operands written back to back, such as "1a",
// which the lexer would otherwise split into two tokens. Whitespace is
// dropped by the lexer, so adjacency is decided by token offsets.
func checkSeparators(text string) error {
	lex, err := asmLexer.LexString("", text)
	if err != nil {
		return err
	}
	var prev lexer.Token
	havePrev := false
	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		if tok.EOF() {
			return nil
		}
		if havePrev && isOperandToken(prev) && isOperandToken(tok) &&
			prev.Pos.Offset+len(prev.Value) == tok.Pos.Offset {
			return fmt.Errorf("%d:%d: missing separator between %q and %q",
				tok.Pos.Line, tok.Pos.Column, prev.Value, tok.Value)
		}
		prev, havePrev = tok, true
	}
}

// checkLiterals rejects integer operands that do not fit in an int.
func checkLiterals(args []string) error {
	for _, arg := range args {
		if !isLiteral(arg) {
			continue
		}
		if _, err := strconv.Atoi(arg); err != nil {
			return fmt.Errorf("integer %s out of range", arg)
		}
	}
	return nil
}

// ParseLines decodes one instruction per line. Text after '#' is a comment
// and blank lines are skipped, so instruction indexes count only non-empty
// lines. Errors wrap ErrParse and name the 1-based source line.
func ParseLines(lines []string) (Program, error) {
	prog := make(Program, 0, len(lines))
	for i, raw := range lines {
		text := raw
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ast, err := lineParser.ParseString("", text)
		if err == nil {
			err = checkSeparators(text)
		}
		if err == nil {
			err = checkLiterals(ast.Args)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrParse, i+1, strings.TrimSpace(raw), err)
		}
		prog = append(prog, Instruction{Op: ast.Op, Args: ast.Args})
	}
	return prog, nil
}

// ParseProgram reads program text from r.
func ParseProgram(r io.Reader) (Program, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vm: reading program: %w", err)
	}
	return ParseLines(lines)
}

// Parse decodes program text held in a string.
func Parse(src string) (Program, error) {
	return ParseLines(strings.Split(src, "\n"))
}

// MustParse is Parse that panics on error. Intended for tests and
// hard-coded programs.
func MustParse(src string) Program {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}
