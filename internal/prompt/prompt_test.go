package prompt

import (
	"bytes"
	"strings"
	"testing"

	"csvtab/internal/config"
)

func TestFlowRunCollectsAnswers(t *testing.T) {
	input := strings.NewReader("sequential\ndata/in.csv\nout.csv\n1,2\nage>18\n")
	var out bytes.Buffer
	f := NewFlow(input, &out)

	cfg, err := f.Run()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != config.ModeSequential {
		t.Fatalf("unexpected mode: %s", cfg.Mode)
	}
	if cfg.ColumnsSpec != "1,2" {
		t.Fatalf("unexpected columns: %s", cfg.ColumnsSpec)
	}
	if cfg.FilterExpression != "age>18" {
		t.Fatalf("unexpected filter: %s", cfg.FilterExpression)
	}
}

func TestFlowRunDefaultsOnBlankAnswers(t *testing.T) {
	input := strings.NewReader("\n\n\n\n\n")
	var out bytes.Buffer
	f := NewFlow(input, &out)

	cfg, err := f.Run()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != config.ModeConcurrentMemory {
		t.Fatalf("unexpected default mode: %s", cfg.Mode)
	}
	if cfg.ColumnsSpec != "*" {
		t.Fatalf("unexpected default columns: %s", cfg.ColumnsSpec)
	}
}
