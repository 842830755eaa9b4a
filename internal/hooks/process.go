package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"trx-reporter/internal/results"
	"trx-reporter/internal/trx"
	"trx-reporter/internal/vars"
)

const defaultTimeout = 10 * time.Second

// Input is written as JSON to the hook's stdin, once per case.
type Input struct {
	Module string   `json:"module"`
	Suite  string   `json:"suite"`
	Test   TestInfo `json:"test"`
}

type TestInfo struct {
	Name       string             `json:"name"`
	FullName   string             `json:"fullName"`
	Result     results.Result     `json:"result"`
	Diagnostic results.Diagnostic `json:"diagnostic"`
}

// Output is read as JSON from the hook's stdout.
type Output struct {
	ResultFiles []string `json:"resultFiles,omitempty"`
}

// Process runs an external command for every case and attaches the result
// files it reports.
type Process struct {
	Cmd     string
	Args    []string
	Env     map[string]string
	Timeout time.Duration
}

func (p *Process) PostProcess(suite results.Suite, tc results.Case, node trx.ResultNode) error {
	out, err := p.run(context.Background(), Input{
		Module: tc.Module().ModuleID(),
		Suite:  suite.FullName(),
		Test: TestInfo{
			Name:       tc.Name(),
			FullName:   tc.FullName(),
			Result:     tc.Result(),
			Diagnostic: tc.Diagnostic(),
		},
	})
	if err != nil {
		logrus.WithError(err).WithField("Cmd", p.Cmd).Error("Post-process hook failed")
		return err
	}
	appendResultFiles(node, out.ResultFiles)
	return nil
}

func (p *Process) run(ctx context.Context, in Input) (*Output, error) {
	tmo := p.Timeout
	if tmo <= 0 {
		tmo = defaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, tmo)
	defer cancel()

	cmd := exec.CommandContext(cctx, p.Cmd, p.Args...)

	cmd.Env = vars.Environ(os.Environ(), p.Env)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	enc := json.NewEncoder(stdin)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(in); err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return nil, fmt.Errorf("encode stdin: %w", err)
	}
	_ = stdin.Close()

	var out Output
	dec := json.NewDecoder(stdout)
	err = dec.Decode(&out)
	// drain trailing output so the hook can exit before Wait
	_, _ = io.Copy(io.Discard, stdout)
	if err != nil {
		_ = cmd.Wait()
		return nil, fmt.Errorf("decode stdout: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("hook exit: %w", err)
	}
	return &out, nil
}

func appendResultFiles(node trx.ResultNode, paths []string) {
	if len(paths) == 0 {
		return
	}
	files := node.Ele("ResultFiles")
	for _, p := range paths {
		files.Ele("ResultFile").Att("path", p)
	}
}
