package queue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
)

type Service struct {
	name       string
	queue      chan gov.Message
	quit       chan bool
	maxRetries int

	ctx context.Context
	wm  gov.WebhookMessager
}

type Processor interface {
	Process(gov.Message) error
}

var ErrQueueFull = errors.New("queue is full")

func NewService(name string, maxRetries, bufferSize int, ctx context.Context, wm gov.WebhookMessager) *Service {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Service{
		name:       name,
		queue:      make(chan gov.Message, bufferSize),
		quit:       make(chan bool),
		maxRetries: maxRetries,
		ctx:        ctx,
		wm:         wm,
	}
}

// Enqueue adds a message without blocking. Messages are dropped when the
// queue is full.
func (s *Service) Enqueue(message gov.Message) error {
	select {
	case s.queue <- message:
		return nil
	default:
		err := fmt.Errorf("%s: %w, dropping %s", s.name, ErrQueueFull, message.ID)
		if s.wm != nil {
			s.wm.NotifyWarning(s.ctx, err)
		}
		return err
	}
}

func (s *Service) Close() {
	s.quit <- true
}

func (s *Service) Start(p Processor) error {
	for {
		select {
		case message := <-s.queue:
			// process an item in the queue
			// it is up to the processor to handle the data type
			err := p.Process(message)
			if err == nil {
				continue
			}

			if message.RetryCount < s.maxRetries {
				message.RetryCount++

				// wait a bit longer on every retry, without blocking the loop
				extraWait := time.Duration(message.RetryCount) * time.Second
				time.AfterFunc(extraWait, func() {
					s.Enqueue(message)
				})
				continue
			}

			log.Default().Println(s.name, "giving up on", message.ID, ":", err)

			if s.wm != nil {
				s.wm.NotifyError(s.ctx, err)
			}
		case <-s.quit:
			// quit the service
			return nil
		case <-s.ctx.Done():
			return s.ctx.Err()
		}
	}
}
