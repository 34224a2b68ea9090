/*
Package worker pool
Runs a fixed number of workers over a queue of tasks while keeping one
live status line per task on the terminal (using
[uilive](https://github.com/gosuri/uilive)).

Usage:

	type ExportTask struct {
		name string
	}

	func (task ExportTask) Run(send func(string), abort func()) {
		send(fmt.Sprintf("%s: exporting...", task.name))
		// Do the work
		send(fmt.Sprintf("%s: done", task.name))
	}

	func main() {
		pool := worker_pool.New(4, len(names))
		for _, name := range names {
			pool.Add(ExportTask{name})
		}
		pool.Start()
		<-pool.Wait()
	}

Every invocation of 'send' replaces the portion of the shared output
dedicated to that task. Add every task before calling Start; the second
argument of New is the total number of tasks the pool will carry.

'Wait' returns a channel that closes once all tasks have finished and the
terminal region has been released, so you can select on it alongside any
result channels your tasks write to.

Calling 'abort' keeps workers from picking up tasks that have not started
yet; tasks already in progress run to completion. After the pool drains,
'Aborted' reports whether any task pulled the brake.
*/
package worker_pool

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gosuri/uilive"
)

type Task interface {
	Run(send func(string), abort func())
}

type queuedTask struct {
	slot int
	task Task
}

type statusLine struct {
	slot int
	text string
}

type Pool struct {
	workers  int
	queue    chan queuedTask
	statuses chan statusLine
	lines    []string
	writer   *uilive.Writer
	running  sync.WaitGroup
	renderer sync.WaitGroup
	next     int
	aborted  atomic.Bool

	// Out overrides the destination of the live output. Defaults to stdout.
	Out io.Writer
}

func New(workers, capacity int) *Pool {
	return &Pool{
		workers:  workers,
		queue:    make(chan queuedTask, capacity),
		statuses: make(chan statusLine),
		lines:    make([]string, capacity),
	}
}

func (pool *Pool) Add(task Task) {
	pool.running.Add(1)
	pool.queue <- queuedTask{pool.next, task}
	pool.next++
}

func (pool *Pool) Start() {
	pool.writer = uilive.New()
	if pool.Out != nil {
		pool.writer.Out = pool.Out
	}
	pool.writer.Start()
	pool.renderer.Add(1)

	for i := 0; i < pool.workers; i++ {
		go pool.work()
	}

	done := make(chan struct{})
	go func() {
		pool.running.Wait()
		close(pool.queue)
		close(done)
	}()
	go pool.render(done)
}

func (pool *Pool) work() {
	for queued := range pool.queue {
		if !pool.aborted.Load() {
			slot := queued.slot
			send := func(text string) {
				pool.statuses <- statusLine{slot, text}
			}
			queued.task.Run(send, pool.abort)
		}
		pool.running.Done()
	}
}

func (pool *Pool) render(done <-chan struct{}) {
	defer pool.renderer.Done()
	for {
		select {
		case status := <-pool.statuses:
			pool.lines[status.slot] = status.text
			pool.repaint()
		case <-done:
			pool.writer.Stop()
			return
		}
	}
}

// repaint redraws every task's current line, skipping slots that have not
// reported yet so the region does not open with a wall of blanks.
func (pool *Pool) repaint() {
	var visible []string
	for _, line := range pool.lines {
		if line != "" {
			visible = append(visible, line)
		}
	}
	fmt.Fprintln(pool.writer, strings.Join(visible, "\n"))
	pool.writer.Flush()
}

func (pool *Pool) abort() {
	pool.aborted.Store(true)
}

// Aborted reports whether any task called its abort callback.
func (pool *Pool) Aborted() bool {
	return pool.aborted.Load()
}

// Wait returns a channel that closes once every queued task has finished
// and the live output has stopped.
func (pool *Pool) Wait() <-chan struct{} {
	waitChannel := make(chan struct{})
	go func() {
		pool.renderer.Wait()
		close(waitChannel)
	}()
	return waitChannel
}
