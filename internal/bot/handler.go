package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/llm"
	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/patient"
)

func (r *Runner) handleCommand(logPrefix string, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		r.sendReply(logPrefix, msg.Chat.ID, replyGreeting)
	case "begin":
		r.sendReply(logPrefix, msg.Chat.ID, replyOnboarding)
		r.sendReply(logPrefix, msg.Chat.ID, replyExample)
	default:
		// Unknown commands are ignored.
	}
}

// handlePatientInfo is the per-request pipeline. Staleness is checked
// right before and right after the blocking model call; a superseded
// request is dropped silently because the newer request's reply will
// follow.
func (r *Runner) handlePatientInfo(ctx context.Context, logPrefix string, j job) {
	rec := patient.Parse(j.text)
	if rec.Empty() {
		log.Printf("%s could not parse patient input: chat=%d", logPrefix, j.chatID)
		r.sendReply(logPrefix, j.chatID, replyCannotParse)
		return
	}

	prompt := patient.BuildPrompt(rec)
	sess := r.sessions.Get(j.chatID)

	if sess.SupersededSince(j.requestedAt) {
		log.Printf("%s skipping superseded request (pre-call): chat=%d", logPrefix, j.chatID)
		return
	}

	text, err := r.invoker.Generate(ctx, prompt)
	if err != nil {
		log.Printf("%s no model response: chat=%d err=%v", logPrefix, j.chatID, err)
		return
	}

	if sess.SupersededSince(j.requestedAt) {
		log.Printf("%s skipping superseded request (post-call): chat=%d", logPrefix, j.chatID)
		return
	}

	reply := llm.StripEmphasis(text)
	sess.MarkSuccess(j.requestedAt)
	log.Printf("%s final response: chat=%d preview=%q", logPrefix, j.chatID, previewString(reply, logContentPreviewLen))
	r.sendReply(logPrefix, j.chatID, reply)
}

// sendReply delivers plain text. No parse mode is set, so Telegram
// applies no markup rendering to model output.
func (r *Runner) sendReply(logPrefix string, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.out.Send(msg); err != nil {
		log.Printf("%s send reply failed: chat=%d err=%v", logPrefix, chatID, err)
	}
}
