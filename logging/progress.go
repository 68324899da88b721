package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Progress keeps a single status line up to date with a carriage return.
// Added to a logger as a hook, it ends the status line before each entry
// so log lines never land on the end of it.
type Progress struct {
	mutex   sync.Mutex
	output  io.Writer
	label   string
	written bool
}

var _ logrus.Hook = (*Progress)(nil)

func (p *Progress) Update(count uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	fmt.Fprintf(p.output, "\r%s %d", p.label, count)
	p.written = true
}

func (p *Progress) endLine() {
	if p.written {
		fmt.Fprint(p.output, "\n")
		p.written = false
	}
}

// Done ends the status line so later log lines start on a fresh one.
func (p *Progress) Done() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.endLine()
}

func (p *Progress) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (p *Progress) Fire(*logrus.Entry) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.endLine()
	return nil
}

func NewProgress(output io.Writer, label string) *Progress {
	return &Progress{
		output: output,
		label:  label,
	}
}
