// Package llm runs the local model binary as a bounded subprocess and
// cleans its output for delivery.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

const (
	llmLogPrefix = "[llm]"

	logOutputPreviewLen = 240

	DefaultTimeout = 120 * time.Second
)

var (
	// ErrTimeout means the model did not finish within the configured
	// deadline. The spawned process is killed when the deadline fires.
	ErrTimeout = errors.New("model invocation timed out")

	// ErrEmptyResponse means the model produced no visible text after
	// the reasoning markup was stripped.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Invoker executes `<Bin> run <Model> <prompt>` synchronously. One
// attempt per call; every failure is terminal for that request.
type Invoker struct {
	Bin     string
	Model   string
	Timeout time.Duration
}

func (iv *Invoker) Generate(ctx context.Context, prompt string) (string, error) {
	timeout := iv.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, iv.Bin, "run", iv.Model, prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		log.Printf("%s model call timed out: bin=%s model=%s timeout=%s", llmLogPrefix, iv.Bin, iv.Model, timeout)
		return "", ErrTimeout
	}
	if err != nil {
		errText := strings.TrimSpace(decodeOutput(stderr.Bytes()))
		log.Printf("%s model call failed: bin=%s model=%s err=%v stderr=%q", llmLogPrefix, iv.Bin, iv.Model, err, previewString(errText, logOutputPreviewLen))
		return "", fmt.Errorf("run %s: %w", iv.Bin, err)
	}

	raw := strings.TrimSpace(decodeOutput(stdout.Bytes()))
	log.Printf("%s raw model output: len=%d preview=%q", llmLogPrefix, len(raw), previewString(raw, logOutputPreviewLen))

	text := strings.TrimSpace(StripReasoning(raw))
	if text == "" {
		log.Printf("%s model output empty after reasoning strip: bin=%s model=%s", llmLogPrefix, iv.Bin, iv.Model)
		return "", ErrEmptyResponse
	}
	return text, nil
}

// decodeOutput substitutes undecodable bytes instead of failing on
// them.
func decodeOutput(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func previewString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
