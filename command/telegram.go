package command

import (
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"
	tgbotapi "gopkg.in/telegram-bot-api.v4"
)

const animationExt = ".mp4"

// TelegramSender sends the outbound actions with the Bot API. All the texts are Markdown.
type TelegramSender struct {
	bot           *tgbotapi.BotAPI
	animationsDir string
	log           *slog.Logger
}

func NewTelegramSender(bot *tgbotapi.BotAPI, animationsDir string, logger *slog.Logger) *TelegramSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &TelegramSender{
		bot:           bot,
		animationsDir: animationsDir,
		log:           logger,
	}
}

func (s *TelegramSender) SendText(chatID int64, replyTo int, textMarkdown string) error {
	msg := tgbotapi.NewMessage(chatID, textMarkdown)
	msg.ParseMode = "Markdown"
	msg.DisableWebPagePreview = true
	msg.ReplyToMessageID = replyTo

	return s.send(msg, "send text")
}

func (s *TelegramSender) SendWithControl(chatID int64, textMarkdown string, control Control) error {
	msg := tgbotapi.NewMessage(chatID, textMarkdown)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboardFor(control)

	return s.send(msg, "send settings")
}

func (s *TelegramSender) EditWithControl(chatID int64, messageID int, textMarkdown string, control Control) error {
	keyboard := keyboardFor(control)
	edit := tgbotapi.NewEditMessageText(chatID, messageID, textMarkdown)
	edit.ParseMode = "Markdown"
	edit.ReplyMarkup = &keyboard

	return s.send(edit, "edit settings")
}

func (s *TelegramSender) SendAnimation(chatID int64, asset AssetID, captionMarkdown string) error {
	animation := tgbotapi.NewAnimationUpload(chatID, s.AnimationPath(asset))
	animation.Caption = captionMarkdown
	animation.ParseMode = "Markdown"

	return s.send(animation, "send animation "+string(asset))
}

// AnswerCallback stops the spinner on the pressed button
func (s *TelegramSender) AnswerCallback(callbackID string) error {
	if _, err := s.bot.AnswerCallbackQuery(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return errors.Wrap(err, "answer callback")
	}
	return nil
}

// AnimationPath is the file on disk with the animation for the given asset
func (s *TelegramSender) AnimationPath(asset AssetID) string {
	return filepath.Join(s.animationsDir, string(asset)+animationExt)
}

func (s *TelegramSender) send(c tgbotapi.Chattable, action string) error {
	resp, err := s.bot.Send(c)
	if err != nil {
		s.log.Error("bot.Send failed", "action", action, "err", err, "message_id", resp.MessageID)
		return errors.Wrap(err, action)
	}
	return nil
}

func keyboardFor(control Control) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(control.Label, control.Action),
		),
	)
}

var _ Sender = (*TelegramSender)(nil)
