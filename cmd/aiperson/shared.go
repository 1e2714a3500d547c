package aiperson

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/aiperson/internal/config"
	elog "github.com/viant/aiperson/internal/log"
	"github.com/viant/aiperson/internal/workspace"
	"github.com/viant/aiperson/service"
)

var (
	svcMu   sync.Mutex
	svc     *service.Service
	cfgPath string

	stdio = newConsole(os.Stdin, os.Stdout)
)

// setup applies global flags and starts the event log sink. The returned
// function flushes and closes the log.
func setup(opts *Options) func() {
	if opts.Workspace != "" {
		workspace.SetRoot(opts.Workspace)
	}
	svcMu.Lock()
	cfgPath = opts.Config
	svcMu.Unlock()

	logPath := opts.Log
	if logPath == "" {
		logPath = filepath.Join(workspace.Root(), "aiperson.log")
	}
	w, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Printf("warning: unable to open log file %s: %v\n", logPath, err)
		return func() {}
	}
	stop := elog.FileSink(w)
	return func() {
		stop()
		_ = w.Close()
	}
}

// serviceSingleton initialises the application service only once.
func serviceSingleton(ctx context.Context) *service.Service {
	svcMu.Lock()
	defer svcMu.Unlock()
	if svc != nil {
		return svc
	}
	fs := afs.New()
	cfg, err := config.LoadOrCreate(ctx, fs, cfgPath)
	if err != nil {
		log.Fatalf("config init error: %v", err)
	}
	svc = service.New(cfg, service.WithFS(fs))
	return svc
}

// console reads answers line by line and prints prompts and results.
type console struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out}
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// ask prints prompt and returns the next input line without its newline.
func (c *console) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.eof = true
	}
	return strings.TrimRight(line, "\r\n")
}

// askYesNo repeats prompt until the answer is yes or no. End of input is no.
func (c *console) askYesNo(prompt string) bool {
	for {
		switch strings.ToLower(strings.TrimSpace(c.ask(prompt))) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		if c.eof {
			return false
		}
		c.println("Please enter 'yes' or 'no'.")
	}
}

// parseYesNo converts a yes/no flag value.
func parseYesNo(value string) (*bool, error) {
	var ret bool
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return nil, nil
	case "yes", "y", "true":
		ret = true
	case "no", "n", "false":
	default:
		return nil, fmt.Errorf("expected yes or no, but had %q", value)
	}
	return &ret, nil
}
