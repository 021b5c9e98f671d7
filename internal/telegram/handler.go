package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/PoluyanbIch/motivetype/internal/logging"
	"github.com/PoluyanbIch/motivetype/internal/service"
)

const (
	cbStartQuiz  = "start_quiz"
	cbExitQuiz   = "exit_quiz"
	cbBackToMenu = "back_to_menu"
	cbInfo       = "info"
	cbQuizPrefix = "quiz_"
)

// sender is the part of *tgbotapi.BotAPI the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	client   *tgbotapi.BotAPI
	api      sender
	sessions *service.SessionStore
	logger   *zap.Logger
}

func NewBot(token string, debug bool, sessions *service.SessionStore, logger *zap.Logger) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	client.Debug = debug

	b := newBot(client, sessions, logger)
	b.client = client
	return b, nil
}

func newBot(api sender, sessions *service.SessionStore, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Start polls Telegram for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context, pollTimeout time.Duration) {
	b.logger.Info("Authorised on account", zap.String("username", b.client.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(pollTimeout / time.Second)

	updates := b.client.GetUpdatesChan(u)
	defer b.client.StopReceivingUpdates()

	b.Run(ctx, updates)
}

// Run dispatches updates until ctx is done or the channel is closed.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil && update.Message.Chat != nil {
		chatID := update.Message.Chat.ID
		switch update.Message.Command() {
		case "start":
			b.sendMainMenu(chatID)
		case "quiz":
			b.startQuiz(chatID)
		case "info":
			b.handleInfo(chatID)
		default:
			b.sendMessage(chatID, "Unknown command. Send /start to open the menu.")
		}
	}
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(callbackConfig); err != nil {
		logging.Chat(b.logger, chatID).Warn("Error answering callback", zap.Error(err))
	}

	switch {
	case data == cbStartQuiz:
		b.startQuiz(chatID)
	case strings.HasPrefix(data, cbQuizPrefix):
		b.handleQuizAnswer(chatID, callback.Message.MessageID, data)
	case data == cbExitQuiz:
		b.exitQuiz(chatID)
	case data == cbBackToMenu:
		b.sendMainMenu(chatID)
	case data == cbInfo:
		b.handleInfo(chatID)
	default:
		b.sendMessage(chatID, "Unknown command")
	}
}

func (b *Bot) sendMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🖼 <b>Art Viewing Motivation Type Finder</b>\n\n"+
		"Answer three short questions to find out what draws you to art.")
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 Find my type", cbStartQuiz),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ About the types", cbInfo),
		),
	)
	b.send(chatID, msg, "main menu")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(chatID, tgbotapi.NewMessage(chatID, text), "message")
}

func (b *Bot) send(chatID int64, c tgbotapi.Chattable, what string) {
	if _, err := b.api.Send(c); err != nil {
		logging.Chat(b.logger, chatID).Error("Error sending "+what, zap.Error(err))
	}
}

// startQuiz resets an existing session or opens a new one.
func (b *Bot) startQuiz(chatID int64) {
	if !b.sessions.With(chatID, (*service.Engine).Reset) {
		b.sessions.Start(chatID)
	}
	logging.Chat(b.logger, chatID).Info("Quiz started")

	var (
		q     service.Question
		total int
		err   error
	)
	b.sessions.With(chatID, func(e *service.Engine) {
		q, err = e.CurrentQuestion()
		total = e.Total()
	})
	if err != nil {
		return
	}
	b.sendQuestion(chatID, 0, total, 0, q)
}

func (b *Bot) sendQuestion(chatID int64, step, total int, progress float64, q service.Question) {
	msg := tgbotapi.NewMessage(chatID, formatQuestion(step, total, progress, q))
	msg.ParseMode = tgbotapi.ModeHTML

	rows := lo.Map(q.Options, func(opt service.Option, i int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, answerData(step, i)),
		)
	})
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🚪 Exit quiz", cbExitQuiz),
	))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	b.send(chatID, msg, "question")
}

func answerData(step, option int) string {
	return fmt.Sprintf("%s%d_%d", cbQuizPrefix, step, option)
}

func parseAnswerData(data string) (step, option int, err error) {
	parts := strings.Split(strings.TrimPrefix(data, cbQuizPrefix), "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed answer %q", data)
	}
	if step, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("malformed step in %q: %w", data, err)
	}
	if option, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("malformed option in %q: %w", data, err)
	}
	return step, option, nil
}

func (b *Bot) handleQuizAnswer(chatID int64, messageID int, data string) {
	log := logging.Chat(b.logger, chatID)

	step, option, err := parseAnswerData(data)
	if err != nil {
		log.Warn("Ignoring answer", zap.Error(err))
		return
	}

	var (
		label    string
		next     *service.Question
		progress float64
		total    int
		outcome  *service.Outcome
	)
	found := b.sessions.With(chatID, func(e *service.Engine) {
		// Buttons from an earlier question (or a finished quiz) are stale.
		if e.IsComplete() || step != e.Step() {
			log.Debug("Ignoring stale answer", zap.Int("step", step), zap.Int("current_step", e.Step()))
			return
		}
		q, _ := e.CurrentQuestion()
		if err := e.SelectOption(option); err != nil {
			log.Warn("Ignoring answer", zap.Int("step", step), zap.Error(err))
			return
		}
		label = q.Options[option].Label
		log.Info("Answer recorded",
			zap.Int("step", step),
			zap.Stringer("category", q.Options[option].Category))

		total = e.Total()
		progress = e.Progress()
		if e.IsComplete() {
			o := e.Outcome()
			outcome = &o
			return
		}
		nq, _ := e.CurrentQuestion()
		next = &nq
	})
	if !found {
		b.sendMessage(chatID, "This quiz has expired. Send /quiz to start again.")
		return
	}
	if label == "" {
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, "✅ "+label)
	b.send(chatID, edit, "answer confirmation")

	switch {
	case outcome != nil:
		log.Info("Quiz finished", zap.Stringer("result", outcome.Winner))
		b.sendResult(chatID, *outcome)
	case next != nil:
		b.sendQuestion(chatID, step+1, total, progress, *next)
	}
}

func (b *Bot) sendResult(chatID int64, o service.Outcome) {
	msg := tgbotapi.NewMessage(chatID, formatProfile(o.Profile))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Start Over", cbStartQuiz),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Menu", cbBackToMenu),
		),
	)
	b.send(chatID, msg, "result")
}

func (b *Bot) exitQuiz(chatID int64) {
	if b.sessions.End(chatID) {
		logging.Chat(b.logger, chatID).Info("Quiz exited")
	}

	msg := tgbotapi.NewMessage(chatID, "🚪 Quiz stopped. Your answers were discarded.")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start again", cbStartQuiz),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Menu", cbBackToMenu),
		),
	)
	b.send(chatID, msg, "exit message")
}

func (b *Bot) handleInfo(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, formatTypes())
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 Find my type", cbStartQuiz),
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", cbBackToMenu),
		),
	)
	b.send(chatID, msg, "info")
}
