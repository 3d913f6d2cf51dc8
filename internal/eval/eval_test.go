package eval

import (
	"errors"
	"strings"
	"testing"

	"nickandperla.net/moji/internal/trace"
)

func runMoji(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	it := New(WithOutputWriter(func(text string) error {
		out.WriteString(text)
		return nil
	}))
	err := it.Run(lines, NewEnv())
	return out.String(), err
}

func TestAssignAndPrint(t *testing.T) {
	out, err := runMoji(t, "X👉Hi", "🗣️X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi\n" {
		t.Errorf("expected 'Hi\\n', got %q", out)
	}
}

func TestAliasChainResolvesTransitively(t *testing.T) {
	out, err := runMoji(t, "A👉B", "B👉C", "C👉hello", "🗣️A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", out)
	}
}

func TestConcatMixesVariablesAndLiterals(t *testing.T) {
	out, err := runMoji(t, "X👉Hello", "🗣️X➕ world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Parts are trimmed; multi-cluster parts stay literal.
	if out != "Helloworld\n" {
		t.Errorf("expected 'Helloworld\\n', got %q", out)
	}
}

func TestUnboundSingleClusterResolvesToItself(t *testing.T) {
	out, err := runMoji(t, "🗣️Z➕!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Z!\n" {
		t.Errorf("expected 'Z!\\n', got %q", out)
	}
}

func TestZeroArgFunction(t *testing.T) {
	out, err := runMoji(t, "F👉🔧▶️🗣️Hi", "F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi\n" {
		t.Errorf("expected 'Hi\\n' exactly once, got %q", out)
	}
}

func TestZeroArgFunctionRejectsArguments(t *testing.T) {
	_, err := runMoji(t, "F👉🔧▶️🗣️Hi", "F X")
	if !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("expected ErrArityMismatch, got %v", err)
	}
}

func TestOneParamFunction(t *testing.T) {
	out, err := runMoji(t, "F👉🔧P▶️P👉P➕!🫷🗣️P", "F Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello!\n" {
		t.Errorf("expected 'Hello!\\n', got %q", out)
	}
}

func TestMissingTrailingArgumentBindsEmpty(t *testing.T) {
	out, err := runMoji(t, "F👉🔧P▶️🗣️P➕!", "F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// P resolves to empty text, so only the literal remains.
	if out != "!\n" {
		t.Errorf("expected '!\\n', got %q", out)
	}
}

func TestConditionalEqualRunsBlock(t *testing.T) {
	out, err := runMoji(t, "❓A🟰A▶️🗣️Yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Yes\n" {
		t.Errorf("expected 'Yes\\n', got %q", out)
	}
}

func TestConditionalUnequalSkipsBlock(t *testing.T) {
	out, err := runMoji(t, "❓A🟰B▶️🗣️Yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestConditionalComparesResolvedValues(t *testing.T) {
	out, err := runMoji(t, "X👉hello", "Y👉hello", "❓X🟰Y▶️🗣️same")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "same\n" {
		t.Errorf("expected 'same\\n', got %q", out)
	}
}

func TestConditionalMissingArrow(t *testing.T) {
	_, err := runMoji(t, "❓A🟰A🗣️Yes")
	if !errors.Is(err, ErrMalformedConditional) {
		t.Fatalf("expected ErrMalformedConditional, got %v", err)
	}
}

func TestConditionalMissingEquals(t *testing.T) {
	_, err := runMoji(t, "❓AB▶️🗣️Yes")
	if !errors.Is(err, ErrMalformedConditional) {
		t.Fatalf("expected ErrMalformedConditional, got %v", err)
	}
}

func TestMalformedFunctionLiteral(t *testing.T) {
	_, err := runMoji(t, "F👉🔧P🗣️Hi")
	if !errors.Is(err, ErrMalformedFunction) {
		t.Fatalf("expected ErrMalformedFunction, got %v", err)
	}
}

func TestUnknownCallFails(t *testing.T) {
	_, err := runMoji(t, "Z Q")
	if !errors.Is(err, ErrUnresolvedStatement) {
		t.Fatalf("expected ErrUnresolvedStatement, got %v", err)
	}
}

func TestCallingTextBindingFails(t *testing.T) {
	_, err := runMoji(t, "X👉Hi", "X")
	if !errors.Is(err, ErrUnresolvedStatement) {
		t.Fatalf("expected ErrUnresolvedStatement, got %v", err)
	}
}

func TestStrayOperatorFails(t *testing.T) {
	_, err := runMoji(t, "▶️🗣️Hi")
	if !errors.Is(err, ErrUnresolvedStatement) {
		t.Fatalf("expected ErrUnresolvedStatement, got %v", err)
	}
}

func TestAssignWithEmptySideIsNoOp(t *testing.T) {
	out, err := runMoji(t, "👉X", "X👉", "🗣️X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// X was never bound, so the print resolves X to itself.
	if out != "X\n" {
		t.Errorf("expected 'X\\n', got %q", out)
	}
}

func TestReassignmentSwitchesFunctionToText(t *testing.T) {
	out, err := runMoji(t, "F👉🔧▶️🗣️Hi", "F", "F👉done", "🗣️F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi\ndone\n" {
		t.Errorf("expected 'Hi\\ndone\\n', got %q", out)
	}
}

func TestAssignInsideFunctionMutatesOuter(t *testing.T) {
	out, err := runMoji(t, "X👉old", "F👉🔧▶️X👉new", "F", "🗣️X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "new\n" {
		t.Errorf("expected 'new\\n', got %q", out)
	}
}

func TestNewNameInsideFunctionDoesNotLeak(t *testing.T) {
	out, err := runMoji(t, "F👉🔧▶️Y👉local🫷🗣️Y", "F", "🗣️Y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Inside: Y bound; after the call the child frame is gone.
	if out != "local\nY\n" {
		t.Errorf("expected 'local\\nY\\n', got %q", out)
	}
}

func TestParamShadowsOuterWithoutMutatingIt(t *testing.T) {
	out, err := runMoji(t, "P👉outer", "F👉🔧P▶️🗣️P", "F inner", "🗣️P")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "inner\nouter\n" {
		t.Errorf("expected 'inner\\nouter\\n', got %q", out)
	}
}

func TestConditionalBodySeesLiveParentChain(t *testing.T) {
	out, err := runMoji(t, "X👉a", "❓X🟰a▶️X👉b", "🗣️X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "b\n" {
		t.Errorf("expected 'b\\n', got %q", out)
	}
}

func TestOutputBeforeFailureIsKept(t *testing.T) {
	out, err := runMoji(t, "🗣️one", "🗣️two", "nope")
	if !errors.Is(err, ErrUnresolvedStatement) {
		t.Fatalf("expected ErrUnresolvedStatement, got %v", err)
	}
	if out != "one\ntwo\n" {
		t.Errorf("expected partial output kept, got %q", out)
	}
}

func TestMultiStatementFunctionBody(t *testing.T) {
	out, err := runMoji(t, "F👉🔧▶️🗣️a🫷🗣️b🫷🗣️c", "F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\nb\nc\n" {
		t.Errorf("expected three lines, got %q", out)
	}
}

func TestTraceEventsAreEmitted(t *testing.T) {
	mem := trace.NewMemory()
	var out strings.Builder
	it := New(
		WithOutputWriter(func(text string) error {
			out.WriteString(text)
			return nil
		}),
		WithTracer(mem),
	)

	err := it.Run([]string{
		"A👉B", "B👉hi", "🗣️A",
		"F👉🔧▶️🗣️done", "F",
		"❓x🟰x▶️🗣️eq",
	}, NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[trace.Kind]bool{}
	for _, ev := range mem.Events() {
		seen[ev.Kind] = true
	}
	for _, kind := range []trace.Kind{trace.Resolve, trace.Concat, trace.FnCreate, trace.Cond, trace.Call} {
		if !seen[kind] {
			t.Errorf("expected at least one %s event", kind)
		}
	}
	if out.String() != "hi\ndone\neq\n" {
		t.Errorf("tracing must not change output, got %q", out.String())
	}
}
