package format

import "testing"

func TestTokenizeStaticAndPlaceholders(t *testing.T) {
	tokens := Tokenize("[{level}] {message}")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokenStatic || tokens[0].Text != "[" {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Kind != TokenLevel {
		t.Errorf("tokens[1] = %+v, want TokenLevel", tokens[1])
	}
	if tokens[2].Kind != TokenStatic || tokens[2].Text != "] " {
		t.Errorf("tokens[2] = %+v", tokens[2])
	}
	if tokens[3].Kind != TokenMessage {
		t.Errorf("tokens[3] = %+v, want TokenMessage", tokens[3])
	}
}

func TestTokenizeLevelWidth(t *testing.T) {
	tokens := Tokenize("{level:<8}")
	if len(tokens) != 1 || tokens[0].Kind != TokenLevelWidth || tokens[0].Width != 8 {
		t.Fatalf("got %+v, want single TokenLevelWidth{Width:8}", tokens)
	}
}

func TestTokenizeExtra(t *testing.T) {
	tokens := Tokenize("{extra[user_id]}")
	if len(tokens) != 1 || tokens[0].Kind != TokenExtra || tokens[0].Key != "user_id" {
		t.Fatalf("got %+v, want single TokenExtra{Key: user_id}", tokens)
	}
}

func TestTokenizeUnknownPlaceholderVerbatim(t *testing.T) {
	tokens := Tokenize("{foo}")
	if len(tokens) != 1 || tokens[0].Kind != TokenStatic || tokens[0].Text != "{foo}" {
		t.Fatalf("got %+v, want verbatim static {foo}", tokens)
	}
}

func TestTokenizeAllNamedPlaceholders(t *testing.T) {
	template := "{time}{name}{function}{line}{file}{module}{elapsed}{thread}{process}"
	wantKinds := []TokenKind{
		TokenTime, TokenName, TokenFunction, TokenLine, TokenFile,
		TokenModule, TokenElapsed, TokenThread, TokenProcess,
	}
	tokens := Tokenize(template)
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(wantKinds), tokens)
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Errorf("tokens[%d].Kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestComputeRequirementsMergesAcrossTokens(t *testing.T) {
	tokens := Tokenize("{time} {name} {thread} {process} {level} {message} {elapsed}")
	reqs := ComputeRequirements(tokens)
	if !(reqs.NeedsTime && reqs.NeedsCaller && reqs.NeedsThread && reqs.NeedsProcess &&
		reqs.NeedsLevel && reqs.NeedsMessage && reqs.NeedsElapsed) {
		t.Errorf("expected all requirements set, got %+v", reqs)
	}
}

func TestComputeRequirementsStaticOnlyNeedsNothing(t *testing.T) {
	reqs := ComputeRequirements(Tokenize("just text"))
	if reqs != (Requirements{}) {
		t.Errorf("expected zero-value requirements, got %+v", reqs)
	}
}
