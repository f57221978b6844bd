package email

import (
	"context"
	"errors"
	"os"

	"github.com/codepair-io/codepair/internal/pair_errors"
	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

type EmailPurpose string
type EmailBodyType string

const (
	KeyEmailSender         = "SENDER_EMAIL"
	KeyEmailSenderPassword = "SENDER_EMAIL_PASSWORD"
	KeyEmailSMTPServer     = "smtp.gmail.com"
	KeyEmailSMTPPort       = 587

	KeyEmailBodyPlain EmailBodyType = "text/plain"
	KeyEmailBodyHTML  EmailBodyType = "text/html"

	PurposeInterviewInvite    EmailPurpose = "interview_invite"
	PurposeInterviewCompleted EmailPurpose = "interview_completed"

	defaultEmailChannelCapacity = 100
)

type EmailRequest struct {
	To       []string
	Subject  string
	Body     string
	BodyType EmailBodyType
	Purpose  EmailPurpose
}

type emailJob struct {
	EmailRequest
	from string
}

var emailChan = make(chan emailJob, defaultEmailChannelCapacity)

// StartEmailWorkers launches n background senders. Call once at
// startup. When the sender address is not configured the workers still
// start and every NewMail call fails fast with ErrMailerStopped.
func StartEmailWorkers(n int) {
	for i := 0; i < n; i++ {
		go worker(i)
	}
	log.Infof("started %d email workers", n)
}

func worker(id int) {
	password := os.Getenv(KeyEmailSenderPassword)
	for job := range emailChan {
		message := gomail.NewMessage()
		message.SetHeader("From", job.from)
		message.SetHeader("To", job.To...)
		message.SetHeader("Subject", job.Subject)
		message.SetBody(string(job.BodyType), job.Body)

		dialer := gomail.NewDialer(KeyEmailSMTPServer, KeyEmailSMTPPort, job.from, password)
		if err := dialer.DialAndSend(message); err != nil {
			log.Errorf(
				"email worker %d failed to send %s mail to %v, %v",
				id, job.Purpose, job.To, err,
			)
			continue
		}
		log.WithFields(log.Fields{
			"purpose": job.Purpose,
			"to":      job.To,
		}).Info("sent mail")
	}
}

// NewMail queues one email for the background workers.
func NewMail(
	ctx context.Context,
	subject string,
	body string,
	bodyType EmailBodyType,
	purpose EmailPurpose,
	to ...string,
) error {
	fromMail := os.Getenv(KeyEmailSender)
	if fromMail == "" {
		log.Error("sender email is not configured")
		return pair_errors.ErrMailerStopped
	}
	if len(to) == 0 {
		return nil
	}
	job := emailJob{
		from: fromMail,
		EmailRequest: EmailRequest{
			To:       to,
			Subject:  subject,
			Body:     body,
			BodyType: bodyType,
			Purpose:  purpose,
		},
	}
	// when all the workers are dead, it shouldn't block indefinitely
	select {
	case <-ctx.Done():
		log.Errorf("email job cancelled: %v", ctx.Err())
		return errors.Join(pair_errors.ErrMailerStopped, ctx.Err())
	case emailChan <- job:
		return nil
	}
}
