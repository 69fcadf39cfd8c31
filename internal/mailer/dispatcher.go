package mailer

import (
	"context"
	"log"
	"sync"
)

type mailKind int

const (
	kindConfirmation mailKind = iota
	kindPasswordReset
)

type mailJob struct {
	kind  mailKind
	email string
	name  string
	code  string
}

// Dispatcher decouples mail delivery from request handling: sends are
// queued onto a buffered channel and drained by a small worker pool, so
// HTTP responses never wait on SMTP. A full queue drops the job with a log
// line rather than blocking the request.
type Dispatcher struct {
	notifier Notifier
	queue    chan mailJob
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier, workers, queueSize int) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan mailJob, queueSize),
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, email, name, code string) error {
	d.enqueue(mailJob{kind: kindConfirmation, email: email, name: name, code: code})
	return nil
}

func (d *Dispatcher) SendPasswordReset(ctx context.Context, email, name, code string) error {
	d.enqueue(mailJob{kind: kindPasswordReset, email: email, name: name, code: code})
	return nil
}

func (d *Dispatcher) enqueue(job mailJob) {
	select {
	case d.queue <- job:
	default:
		log.Printf("mailer: queue full, dropping email to %s", job.email)
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	for job := range d.queue {
		ctx := context.Background()

		var err error
		switch job.kind {
		case kindConfirmation:
			err = d.notifier.SendConfirmation(ctx, job.email, job.name, job.code)
		case kindPasswordReset:
			err = d.notifier.SendPasswordReset(ctx, job.email, job.name, job.code)
		}

		if err != nil {
			log.Printf("mailer: worker %d failed to send to %s: %v", workerID, job.email, err)
		}
	}
}

// Shutdown drains queued mail, bounded by ctx.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	close(d.queue)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Println("mailer: shutdown timed out with mail still queued")
	}
}
