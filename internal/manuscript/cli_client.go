package manuscript

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mathquest/app/internal/models"
)

// CLIClient shells out to the claude CLI. The manuscript is written to a
// temporary file and the model reads it with its Read tool.
type CLIClient struct {
	cliPath string
}

func NewCLIClient(cliPath string) *CLIClient {
	return &CLIClient{cliPath: cliPath}
}

func (c *CLIClient) Assess(ctx context.Context, systemPrompt string, userPrompt string, image models.Manuscript) (*LLMResponse, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	f, err := os.CreateTemp("", "manuscript-*"+extensionFor(image.MediaType))
	if err != nil {
		return nil, fmt.Errorf("create manuscript file: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(image.Data); err != nil {
		f.Close()
		return nil, fmt.Errorf("write manuscript file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close manuscript file: %w", err)
	}

	cmd := exec.CommandContext(ctx,
		c.cliPath,
		"--print",
		"--output-format", "text",
		"--system-prompt", systemPrompt,
		"--allowedTools", "Read",
		"--max-turns", "2",
	)
	cmd.Stdin = strings.NewReader(userPrompt + "\n\nImagem da resolução: " + f.Name())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("claude CLI error: %w\nstderr: %s", err, stderr.String())
	}

	responseText := strings.TrimSpace(stdout.String())
	if responseText == "" {
		return nil, fmt.Errorf("claude CLI returned empty response")
	}
	return &LLMResponse{Content: responseText}, nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
