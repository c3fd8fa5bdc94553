package condor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

const (
	inputDirName  = "condor_input"
	outputDirName = "condor_output"

	aggregateScript = "submit_all.sh"
)

var submitTemplate = template.Must(template.New("submit").Parse(
	`universe = {{.Universe}}
executable = {{.Executable}}
arguments = "{{.Arguments}}"
output = {{.OutputDir}}/job_{{.Index}}.out
error = {{.OutputDir}}/job_{{.Index}}.err
log = {{.OutputDir}}/job_{{.Index}}.log
{{- if .RequestMemory}}
request_memory = {{.RequestMemory}}
{{- end}}
{{- if .Notification}}
notification = {{.Notification}}
{{- end}}
queue
`))

type submitJob struct {
	Universe      string
	Executable    string
	Arguments     string
	OutputDir     string
	Index         int
	RequestMemory string
	Notification  string
}

// Generate reads the infile, splits it into per-job chunks and writes
// the scheduler surface under dir: condor_input/ with one chunk file
// and one submit description per job, condor_output/ for job logs,
// and an aggregate script submitting every job in order.
func Generate(infile string, cfg *Config, dir string) error {
	chunks, err := readChunks(infile, cfg.ChunkSize)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return xerrors.Errorf("condor: infile %s is empty", infile)
	}

	inputDir := filepath.Join(dir, inputDirName)
	outputDir := filepath.Join(dir, outputDirName)
	for _, d := range []string{inputDir, outputDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			return writeJob(cfg, inputDir, i, chunk)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeAggregate(dir, len(chunks))
}

func readChunks(infile string, chunkSize int) ([][]string, error) {
	f, err := os.Open(infile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var chunks [][]string
	var current []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		current = append(current, line)
		if len(current) == chunkSize {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks, nil
}

func writeJob(cfg *Config, inputDir string, index int, chunk []string) error {
	chunkFile := filepath.Join(inputDir, fmt.Sprintf("chunk_%d.in", index))
	if err := os.WriteFile(chunkFile, []byte(strings.Join(chunk, "\n")+"\n"), 0644); err != nil {
		return err
	}

	args := strings.TrimSpace(cfg.Arguments + " " + chunkFile)

	var sb strings.Builder
	err := submitTemplate.Execute(&sb, submitJob{
		Universe:      cfg.Universe,
		Executable:    cfg.Executable,
		Arguments:     args,
		OutputDir:     outputDirName,
		Index:         index,
		RequestMemory: cfg.RequestMemory,
		Notification:  cfg.Notification,
	})
	if err != nil {
		return err
	}

	subFile := filepath.Join(inputDir, fmt.Sprintf("job_%d.sub", index))
	return os.WriteFile(subFile, []byte(sb.String()), 0644)
}

func writeAggregate(dir string, jobs int) error {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\nset -e\n")
	for i := 0; i < jobs; i++ {
		fmt.Fprintf(&sb, "condor_submit %s/job_%d.sub\n", inputDirName, i)
	}

	return os.WriteFile(filepath.Join(dir, aggregateScript), []byte(sb.String()), 0755)
}
