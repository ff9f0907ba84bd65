package translation

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcdefgh", 2},
		{strings.Repeat("x", 400), 100},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%d chars) = %d, want %d", len(tt.text), got, tt.want)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Hello world", []string{"Hello world"}},
		{"several", "Hi there. How are you? Fine!  Bye.", []string{"Hi there.", "How are you?", "Fine!", "Bye."}},
		{"decimal stays", "It costs 3.50 dollars. Ok", []string{"It costs 3.50 dollars.", "Ok"}},
		{"newlines", "One.\nTwo.", []string{"One.", "Two."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkByTokens(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		maxTokens int
		want      [][]string
	}{
		{
			name:      "empty input",
			sentences: nil,
			maxTokens: 10,
			want:      nil,
		},
		{
			name:      "all fit in one chunk",
			sentences: []string{"aaaa", "bbbb", "cccc"},
			maxTokens: 10,
			want:      [][]string{{"aaaa", "bbbb", "cccc"}},
		},
		{
			name:      "split across chunks",
			sentences: []string{"aaaaaaaa", "bbbbbbbb", "cccccccc"},
			maxTokens: 4,
			want:      [][]string{{"aaaaaaaa", "bbbbbbbb"}, {"cccccccc"}},
		},
		{
			name:      "oversized sentence gets its own chunk",
			sentences: []string{"aaaa", strings.Repeat("x", 40), "bbbb"},
			maxTokens: 4,
			want:      [][]string{{"aaaa"}, {strings.Repeat("x", 40)}, {"bbbb"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChunkByTokens(tt.sentences, tt.maxTokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChunkByTokens() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkedTranslate(t *testing.T) {
	stub := &stubBackend{name: "stub"}
	c := NewChunked(stub, 4)

	short := "Hi."
	if got, _ := c.Translate(context.Background(), short); got != "es:Hi." {
		t.Errorf("short text: got %q", got)
	}
	if stub.callCount() != 1 {
		t.Fatalf("short text should use a single call, got %d", stub.callCount())
	}

	long := "First sentence here. Second sentence here."
	got, err := c.Translate(context.Background(), long)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "es:First sentence here. es:Second sentence here." {
		t.Errorf("Translate() = %q", got)
	}
	if stub.callCount() != 3 {
		t.Errorf("backend called %d times, want 3", stub.callCount())
	}
	if c.Name() != "stub" {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestChunkedTranslate_Error(t *testing.T) {
	boom := errors.New("inference error")
	c := NewChunked(&stubBackend{name: "stub", err: boom}, 2)

	_, err := c.Translate(context.Background(), "One sentence. Two sentence.")
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}
