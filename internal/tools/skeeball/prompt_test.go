package skeeball

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadPlayCount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int
		wantPrompts int
		wantInvalid int
	}{
		{name: "first try", input: "5\n", want: 5, wantPrompts: 1},
		{name: "out of range twice", input: "-1\n11\n5\n", want: 5, wantPrompts: 3, wantInvalid: 2},
		{name: "upper bound", input: "10\n", want: 10, wantPrompts: 1},
		{name: "lower bound", input: "1\n", want: 1, wantPrompts: 1},
		// Zero slips through the range check even though the prompt says 1-10.
		{name: "zero accepted", input: "0\n", want: 0, wantPrompts: 1},
		{name: "non numeric", input: "three\n3\n", want: 3, wantPrompts: 2, wantInvalid: 1},
		{name: "tokens on one line", input: "42 7", want: 7, wantPrompts: 2, wantInvalid: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadPlayCount(strings.NewReader(tt.input), &out, nil)
			if err != nil {
				t.Fatalf("ReadPlayCount() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ReadPlayCount() = %d, want %d", got, tt.want)
			}
			if n := strings.Count(out.String(), MessagePlaysPrompt); n != tt.wantPrompts {
				t.Errorf("got %d prompts, want %d", n, tt.wantPrompts)
			}
			if n := strings.Count(out.String(), MessageInvalidPlays+"\n"); n != tt.wantInvalid {
				t.Errorf("got %d invalid notices, want %d", n, tt.wantInvalid)
			}
		})
	}
}

func TestReadPlayCountTranscript(t *testing.T) {
	var out bytes.Buffer
	if _, err := ReadPlayCount(strings.NewReader("-1\n11\n5\n"), &out, nil); err != nil {
		t.Fatalf("ReadPlayCount() error = %v", err)
	}
	want := MessagePlaysPrompt +
		MessageInvalidPlays + "\n" +
		MessagePlaysPrompt +
		MessageInvalidPlays + "\n" +
		MessagePlaysPrompt
	if out.String() != want {
		t.Fatalf("transcript = %q, want %q", out.String(), want)
	}
}

func TestReadPlayCountEndOfInput(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadPlayCount(strings.NewReader("99\n"), &out, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("ReadPlayCount() error = %v, want %v", err, ErrNoInput)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestReadPlayCountReadError(t *testing.T) {
	_, err := ReadPlayCount(errReader{}, &bytes.Buffer{}, nil)
	if err == nil || errors.Is(err, ErrNoInput) {
		t.Fatalf("expected read error, got %v", err)
	}
	if !strings.Contains(err.Error(), "read play count") {
		t.Fatalf("expected read play count prefix, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestReadPlayCountWriteError(t *testing.T) {
	_, err := ReadPlayCount(strings.NewReader("5"), failingWriter{}, nil)
	if err == nil || !strings.Contains(err.Error(), "write prompt") {
		t.Fatalf("expected write prompt error, got %v", err)
	}
}
