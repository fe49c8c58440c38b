package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchRequest is one non-empty input line
type batchRequest struct {
	line   int
	fields []string
}

// batchResult is the outcome of one request
type batchResult struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	UnitID string `json:"unitId,omitempty"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one request per line",
		Long: `Convert one "<value> <from> <to>" request per line, read from a file
or from standard input when the file is omitted or "-".

Blank lines and lines starting with "#" are skipped. Lines are converted
concurrently and printed in input order. A failed line is printed as
"error: ..." in its place and the command exits with an error at the end.

Examples:
    unitconv batch requests.txt
    printf '1 m ft\n100 degC degF\n' | unitconv batch --workers 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return a.runBatch(cmd, in)
		},
	}
	cmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "number of concurrent conversions")
	return cmd
}

func readRequests(r io.Reader) ([]batchRequest, error) {
	var reqs []batchRequest
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reqs = append(reqs, batchRequest{line: n, fields: strings.Fields(line)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read requests: %w", err)
	}
	return reqs, nil
}

func (a *app) runBatch(cmd *cobra.Command, in io.Reader) error {
	reqs, err := readRequests(in)
	if err != nil {
		return err
	}
	workers := a.cfg.Batch.Workers
	a.log.Debug("batch started", "lines", len(reqs), "workers", workers)

	results := make([]batchResult, len(reqs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.convertRequest(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
			a.log.Debug("line failed", "line", res.Line, "error", res.Error)
		}
	}

	w := cmd.OutOrStdout()
	if a.jsonOutput() {
		if err := writeJSON(w, results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				fmt.Fprintf(w, "error: line %d: %s\n", res.Line, res.Error)
				continue
			}
			fmt.Fprintln(w, res.Value)
		}
	}

	a.log.Debug("batch finished", "lines", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(results))
	}
	return nil
}

func (a *app) convertRequest(req batchRequest) batchResult {
	res := batchResult{Line: req.line, Input: strings.Join(req.fields, " ")}
	if len(req.fields) != 3 {
		res.Error = fmt.Sprintf("expected <value> <from> <to>, got %d fields", len(req.fields))
		return res
	}
	from, err := a.unit(req.fields[1])
	if err != nil {
		res.Error = err.Error()
		return res
	}
	to, err := a.unit(req.fields[2])
	if err != nil {
		res.Error = err.Error()
		return res
	}
	s, err := a.conv.Convert(req.fields[0], from.ID, to.ID, a.options())
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.UnitID, res.Value = to.ID, s
	return res
}
