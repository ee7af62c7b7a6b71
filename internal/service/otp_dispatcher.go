package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const OTPTopic = "otp_dispatch"

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

type OTPMessage struct {
	Email   string `json:"email"`
	Code    string `json:"code"`
	Purpose string `json:"purpose"`
}

// OTPQueue hands codes to the mail worker so requests never wait on SMTP.
type OTPQueue interface {
	Enqueue(ctx context.Context, msg OTPMessage) error
}

type IOTPDispatcher interface {
	OTPQueue
	Consume(ctx context.Context) error
}

type otpDispatcher struct {
	pubSub *gochannel.GoChannel
	topic  string
	mailer mailer.IEmailService
	logger logger.ILogger
}

func NewOTPDispatcher(pubSub *gochannel.GoChannel, topic string, mail mailer.IEmailService, log logger.ILogger) IOTPDispatcher {
	return &otpDispatcher{
		pubSub: pubSub,
		topic:  topic,
		mailer: mail,
		logger: log,
	}
}

func (d *otpDispatcher) Enqueue(ctx context.Context, msg OTPMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	m := message.NewMessage(watermill.NewUUID(), payload)
	m.SetContext(ctx)
	return d.pubSub.Publish(d.topic, m)
}

func (d *otpDispatcher) Consume(ctx context.Context) error {
	messages, err := d.pubSub.Subscribe(ctx, d.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			d.process(msg)
		}
	}()

	return nil
}

// process always acks: a lost code is recovered by requesting a new one.
func (d *otpDispatcher) process(msg *message.Message) {
	defer msg.Ack()

	var payload OTPMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		d.logger.Error("OTP", "Malformed OTP message", map[string]interface{}{"error": err.Error()})
		return
	}

	err := d.mailer.SendOTP(payload.Email, payload.Code, payload.Purpose)
	switch {
	case err == nil:
		d.logger.Info("OTP", "OTP email sent", map[string]interface{}{"email": payload.Email, "purpose": payload.Purpose})
	case errors.Is(err, mailer.ErrMailerDisabled):
		d.logger.Warn("OTP", "SMTP not configured, OTP email skipped", map[string]interface{}{"email": payload.Email})
	default:
		d.logger.Error("OTP", "Failed to send OTP email", map[string]interface{}{"email": payload.Email, "error": err.Error()})
	}
}
