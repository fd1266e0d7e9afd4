// Package bot maps Telegram updates onto the vital-sign pipeline:
// parse, prompt, model call, cleanup, reply.
package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/config"
	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/llm"
	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/session"
)

// Generator produces a cleaned model response for a finished prompt.
// Satisfied by *llm.Invoker.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sender delivers outbound chat messages. Satisfied by
// *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type job struct {
	chatID      int64
	text        string
	requestedAt time.Time
}

type Runner struct {
	api *tgbotapi.BotAPI
	out Sender
	cfg config.Config

	sessions *session.Store
	invoker  Generator

	jobs chan job
}

func NewRunner(api *tgbotapi.BotAPI, cfg config.Config) *Runner {
	return &Runner{
		api:      api,
		out:      api,
		cfg:      cfg,
		sessions: session.NewStore(),
		invoker: &llm.Invoker{
			Bin:     cfg.ModelBin,
			Model:   cfg.ModelName,
			Timeout: cfg.ModelTimeout,
		},
		jobs: make(chan job, cfg.QueueSize),
	}
}

// Run consumes the Telegram update stream until ctx is cancelled.
// Free-text messages are handed to a fixed pool of workers so the
// update loop never blocks on a model call.
func (r *Runner) Run(ctx context.Context) error {
	logPrefix := fmt.Sprintf("%s bot=%s", botLogPrefix, r.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = r.cfg.PollTimeout
	updates := r.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.runWorker(ctx, logPrefix)
		}()
	}

	log.Printf("%s update loop started: workers=%d queue=%d", logPrefix, r.cfg.WorkerCount, r.cfg.QueueSize)
	for {
		select {
		case <-ctx.Done():
			r.api.StopReceivingUpdates()
			close(r.jobs)
			wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				close(r.jobs)
				wg.Wait()
				return nil
			}
			r.dispatch(logPrefix, update)
		}
	}
}

func (r *Runner) runWorker(ctx context.Context, logPrefix string) {
	for j := range r.jobs {
		if ctx.Err() != nil {
			return
		}
		r.handlePatientInfo(ctx, logPrefix, j)
	}
}

// dispatch routes one update. The request timestamp is recorded here,
// before the job is queued, so a newer message supersedes older
// in-flight work immediately.
func (r *Runner) dispatch(logPrefix string, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	if msg.IsCommand() {
		r.handleCommand(logPrefix, msg)
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	log.Printf("%s user input: chat=%d content=%q", logPrefix, msg.Chat.ID, previewString(text, logContentPreviewLen))

	now := time.Now()
	r.sessions.Get(msg.Chat.ID).BeginRequest(now)

	select {
	case r.jobs <- job{chatID: msg.Chat.ID, text: text, requestedAt: now}:
	default:
		log.Printf("%s job queue full, dropping message: chat=%d", logPrefix, msg.Chat.ID)
	}
}

func previewString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
