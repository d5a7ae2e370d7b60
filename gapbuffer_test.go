package gapbuffer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("12345678")
	if b.String() != "12345678" {
		t.Errorf("expected buffer to render '12345678', got '%s'", b.String())
	}
	if b.Len() != 8 {
		t.Errorf("expected Len() = 8, is %d", b.Len())
	}
}

func TestInsertNearEnd(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("12345678")
	if err := b.InsertString(7, "9"); err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("b = '%s'", b)
	if b.String() != "123456798" {
		t.Errorf("expected '123456798', got '%s'", b.String())
	}
}

func TestInsertAtStart(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("12345678")
	if err := b.InsertString(0, "0"); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "012345678" {
		t.Errorf("expected '012345678', got '%s'", b.String())
	}
}

func TestInsertMovesGapLeft(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("0123456789.0123456789.0123456789")
	if err := b.InsertString(0, "9876543210."); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "9876543210.0123456789.0123456789.0123456789" {
		t.Errorf("unexpected content '%s'", b.String())
	}
}

func TestInsertMovesGapRight(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("0123456789.0123456789.0123456789")
	if err := b.InsertString(11, "9876543210."); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "0123456789.9876543210.0123456789.0123456789" {
		t.Errorf("unexpected content '%s'", b.String())
	}
}

func TestRemoveAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("12345678")
	if err := b.Remove(0, 8); err != nil {
		t.Fatal(err.Error())
	}
	if !b.IsVoid() || b.String() != "" {
		t.Errorf("expected empty buffer, got '%s'", b.String())
	}
}

func TestRemovePrefixSuffixMiddle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		start, end int
		expect     string
	}{
		{0, 1, "2345678"},
		{7, 8, "1234567"},
		{3, 6, "12378"},
	}
	for _, c := range cases {
		b := FromString("12345678")
		if err := b.Remove(c.start, c.end); err != nil {
			t.Fatal(err.Error())
		}
		if b.String() != c.expect {
			t.Errorf("remove [%d,%d): expected '%s', got '%s'", c.start, c.end, c.expect, b.String())
		}
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("12345678")
	err := b.Remove(0, 9)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if b.String() != "12345678" {
		t.Errorf("failed remove must not mutate content, got '%s'", b.String())
	}
	if err = b.Remove(3, 3); !errors.Is(err, ErrIllegalRange) {
		t.Errorf("expected ErrIllegalRange for empty range, got %v", err)
	}
	if err = b.Remove(5, 3); !errors.Is(err, ErrIllegalRange) {
		t.Errorf("expected ErrIllegalRange for inverted range, got %v", err)
	}
}

func TestInsertOutOfRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("abc")
	if err := b.InsertString(4, "x"); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := b.InsertString(-1, "x"); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for negative offset, got %v", err)
	}
}

func TestGrowFromZeroCapacity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := WithCapacity(0)
	if b.Cap() != 0 || !b.IsVoid() {
		t.Fatalf("expected empty zero-capacity buffer")
	}
	if err := b.InsertString(0, "hello"); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "hello" {
		t.Errorf("expected 'hello', got '%s'", b.String())
	}
	if b.Cap()%chunkSize != 0 {
		t.Errorf("capacity should be a multiple of the growth stride, is %d", b.Cap())
	}
}

func TestGrowKeepsContent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := WithCapacity(4)
	want := ""
	payload := "abcdefghij" // 10 bytes, forces repeated growth
	for i := 0; i < 20; i++ {
		if err := b.InsertString(len(want)/2, payload); err != nil {
			t.Fatal(err.Error())
		}
		mid := len(want) / 2
		want = want[:mid] + payload + want[mid:]
	}
	if b.String() != want {
		t.Errorf("content lost during growth:\nwant '%s'\ngot  '%s'", want, b.String())
	}
	if b.Len() != 200 {
		t.Errorf("expected 200 content bytes, got %d", b.Len())
	}
}

func TestInsertSplitEqualsConcat(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b1 := FromString("12345678")
	if err := b1.InsertString(4, "ab"); err != nil {
		t.Fatal(err.Error())
	}
	if err := b1.InsertString(6, "cd"); err != nil {
		t.Fatal(err.Error())
	}
	b2 := FromString("12345678")
	if err := b2.InsertString(4, "abcd"); err != nil {
		t.Fatal(err.Error())
	}
	if b1.String() != b2.String() {
		t.Errorf("split insert '%s' differs from single insert '%s'", b1, b2)
	}
}

// Exercise random edit sequences against a plain string as reference model.
func TestRandomEditsAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	rng := rand.New(rand.NewSource(4711))
	b := WithCapacity(0)
	model := ""
	alphabet := "abcdefghijklmnopqrstuvwxyz \n"
	for i := 0; i < 2000; i++ {
		if len(model) > 0 && rng.Intn(4) == 0 { // remove a small range
			start := rng.Intn(len(model))
			end := start + 1 + rng.Intn(min(len(model)-start, 7))
			if err := b.Remove(start, end); err != nil {
				t.Fatalf("step %d: remove [%d,%d): %v", i, start, end, err)
			}
			model = model[:start] + model[end:]
		} else { // insert a small random payload
			n := 1 + rng.Intn(9)
			payload := make([]byte, n)
			for j := range payload {
				payload[j] = alphabet[rng.Intn(len(alphabet))]
			}
			at := rng.Intn(len(model) + 1)
			if err := b.Insert(at, payload); err != nil {
				t.Fatalf("step %d: insert at %d: %v", i, at, err)
			}
			model = model[:at] + string(payload) + model[at:]
		}
		if b.Len() != len(model) {
			t.Fatalf("step %d: length diverged: %d vs %d", i, b.Len(), len(model))
		}
	}
	if b.String() != model {
		t.Errorf("buffer diverged from reference model after random edits")
	}
	t.Logf("final content length = %d, capacity = %d", b.Len(), b.Cap())
}

func TestClear(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := FromString("hello world")
	cap := b.Cap()
	b.Clear()
	if !b.IsVoid() || b.Cap() != cap {
		t.Errorf("Clear should empty the content but keep the allocation")
	}
	if err := b.InsertString(0, "x"); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "x" {
		t.Errorf("expected 'x' after clear and insert, got '%s'", b.String())
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
