package middleware

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestIDKey is the telebot context key holding the update's correlation id
const requestIDKey = "request_id"

// UpdateLogger logs every update with a correlation id and the handler's outcome
func UpdateLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			requestID := uuid.NewString()
			c.Set(requestIDKey, requestID)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.Int("update_id", c.Update().ID),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			start := time.Now()
			err := next(c)
			fields = append(fields, zap.Duration("elapsed", time.Since(start)))

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

// RequestID returns the correlation id set by UpdateLogger
func RequestID(c tele.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
