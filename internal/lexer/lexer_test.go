package lexer

import "testing"

func collect(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `local x = 1 + 2 * 3 // 4 % 5 ^ 6 .. "s" == 1 ~= 2 <= 3 >= 4`

	toks := collect(input)

	want := []TokenType{
		LOCAL, NAME, ASSIGN, NUMBER, PLUS, NUMBER, STAR, NUMBER, SLASH2, NUMBER,
		PERCENT, NUMBER, CARET, NUMBER, CONCAT, STRING, EQ, NUMBER, NEQ, NUMBER,
		LE, NUMBER, GE, NUMBER, EOF,
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestKeywords(t *testing.T) {
	toks := collect("if then else elseif end while do for in function local return break and or not nil true false")
	want := []TokenType{IF, THEN, ELSE, ELSEIF, END, WHILE, DO, FOR, IN, FUNCTION, LOCAL,
		RETURN, BREAK, AND, OR, NOT, NIL, TRUE, FALSE, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestShortStringEscapes(t *testing.T) {
	toks := collect(`"a\nb\tc\\d\'e\"f"`)
	if toks[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	want := "a\nb\tc\\d'e\"f"
	if toks[0].Literal != want {
		t.Errorf("got %q, want %q", toks[0].Literal, want)
	}
}

func TestLongStringStripsLeadingNewline(t *testing.T) {
	toks := collect("[[\nhello\nworld]]")
	if toks[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != "hello\nworld" {
		t.Errorf("got %q", toks[0].Literal)
	}
}

func TestCommentsSkipped(t *testing.T) {
	toks := collect("-- comment\nlocal x = 1 --[[ multi\nline ]] + 2")
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{LOCAL, NAME, ASSIGN, NUMBER, PLUS, NUMBER, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}

func TestLineTracking(t *testing.T) {
	toks := collect("local x\nlocal y\n\nlocal z")
	lines := map[string]int{}
	for _, tok := range toks {
		if tok.Type == NAME {
			lines[tok.Literal] = tok.Line
		}
	}
	if lines["x"] != 1 || lines["y"] != 2 || lines["z"] != 4 {
		t.Errorf("unexpected line numbers: %v", lines)
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := collect("1 2.5 0 100.001")
	for i, want := range []string{"1", "2.5", "0", "100.001"} {
		if toks[i].Type != NUMBER || toks[i].Literal != want {
			t.Errorf("token %d: got %s %q, want NUMBER %q", i, toks[i].Type, toks[i].Literal, want)
		}
	}
}
