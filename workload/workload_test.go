package workload

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestGeneratorProducesWellFormedOps(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)), 0, 100, 0.2)
	ops := gen.Generate(200)
	if len(ops) != 200 {
		t.Fatalf("got %d ops, want 200", len(ops))
	}
	live := map[int64]bool{}
	for i, op := range ops {
		switch op.Kind {
		case OpInsert:
			if op.Start <= 0 || op.Start >= 100 || op.End <= 0 || op.End >= 100 || op.Start > op.End {
				t.Fatalf("op %d: out-of-bounds interval [%d,%d]", i, op.Start, op.End)
			}
			live[op.Marker] = true
		case OpRemove:
			if !live[op.Marker] {
				t.Fatalf("op %d: remove of marker %d that was never live", i, op.Marker)
			}
			delete(live, op.Marker)
		default:
			t.Fatalf("op %d: unknown kind %d", i, op.Kind)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)), 0, 50, 0.3)
	ops := gen.Generate(64)

	var buf bytes.Buffer
	if err := writeOps(&buf, ops); err != nil {
		t.Fatalf("writeOps: %v", err)
	}
	got, err := readOps(&buf)
	if err != nil {
		t.Fatalf("readOps: %v", err)
	}
	if len(got) != len(ops) {
		t.Fatalf("got %d ops back, want %d", len(got), len(ops))
	}
	for i := range ops {
		if got[i] != ops[i] {
			t.Fatalf("op %d mismatch: got %+v, want %+v", i, got[i], ops[i])
		}
	}
}

func TestReadFileRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not-a-workload-file-at-all")
	if _, err := readOps(buf); err == nil {
		t.Fatal("expected error for bad magic, got nil")
	}
}

func TestReplayProducesOneSamplePerOp(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)), 0, 200, 0.25)
	ops := gen.Generate(150)

	samples, err := Replay(0, 200, ops)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(samples) != len(ops) {
		t.Fatalf("got %d samples, want %d", len(samples), len(ops))
	}
	for i, s := range samples {
		if s.Steps < 0 {
			t.Fatalf("sample %d: negative steps %d", i, s.Steps)
		}
		if s.Kind != ops[i].Kind || s.Marker != ops[i].Marker {
			t.Fatalf("sample %d: mismatched op, got %+v want op %+v", i, s, ops[i])
		}
	}
}

func TestReplayWithProbSweepsPromotionProbability(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(5)), 0, 200, 0.2)
	ops := gen.Generate(100)

	for _, p := range []float64{0.125, 0.25, 0.5} {
		samples, err := ReplayWithProb(0, 200, ops, p)
		if err != nil {
			t.Fatalf("ReplayWithProb(p=%g): %v", p, err)
		}
		if len(samples) != len(ops) {
			t.Fatalf("p=%g: got %d samples, want %d", p, len(samples), len(ops))
		}
	}
}

func TestWriteCostCSVProducesHeaderAndRows(t *testing.T) {
	samples := []CostSample{
		{OpIndex: 0, Kind: OpInsert, Marker: 1, Steps: 5},
		{OpIndex: 1, Kind: OpRemove, Marker: 1, Steps: 3},
	}
	var buf bytes.Buffer
	if err := WriteCostCSV(&buf, samples); err != nil {
		t.Fatalf("WriteCostCSV: %v", err)
	}
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("op_index,kind,marker,steps")) {
		t.Fatalf("missing header in output:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("insert")) || !bytes.Contains([]byte(out), []byte("remove")) {
		t.Fatalf("missing kind labels in output:\n%s", out)
	}
}
