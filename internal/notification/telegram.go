package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking changes to the front-of-house staff chat.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	staffChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, staffChatID: staffChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, staffChatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"%s, party of %d\n"+"%s at %s, table %d\n"+"%s / %s",
		b.Name, b.PartySize,
		b.Date.Format("02.01.2006"), b.Slot, b.TableID,
		b.Email, b.Phone,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"%s, party of %d\n"+"%s at %s, table %d",
		b.Name, b.PartySize,
		b.Date.Format("02.01.2006"), b.Slot, b.TableID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.staffChatID == 0 {
		n.logger.Debug("notification skipped (no staff chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.staffChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.staffChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.staffChatID),
			logger.String("error", err.Error()),
		)
	}
}
