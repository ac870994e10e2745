// Package notify sends booking confirmations to an operator Telegram chat.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"fairway/internal/events"
	"fairway/internal/models"
	"fairway/internal/schedule"
)

// TelegramNotifier forwards accepted bookings to a chat. Sends are rate
// limited to stay under the Telegram API ceiling.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(token string, chatID int64, logger *zerolog.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(20), 30),
		logger:  logger,
	}, nil
}

// Subscribe attaches the notifier to booking events on the bus.
func (n *TelegramNotifier) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.BookingCreated, func(e events.Event) {
		var res models.Reservation
		if err := json.Unmarshal(e.Payload, &res); err != nil {
			n.logger.Error().Err(err).Msg("decode booking event")
			return
		}
		n.send(&res)
	})
}

func (n *TelegramNotifier) send(res *models.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := n.limiter.Wait(ctx); err != nil {
		n.logger.Warn().Err(err).Str("booking_id", res.ID).Msg("notification rate limit")
		return
	}

	text := fmt.Sprintf("New booking: %s on %s at %s for %d hour(s), total $%s.\nCustomer: %s (%s, %s)",
		res.ResourceType.DisplayName(), res.Date, schedule.FormatHour(res.StartHour),
		res.DurationHours, models.FormatCents(res.TotalCents),
		res.Customer.Name, res.Customer.Email, res.Customer.Phone)

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.logger.Error().Err(err).Str("booking_id", res.ID).Msg("send telegram notification")
	}
}
