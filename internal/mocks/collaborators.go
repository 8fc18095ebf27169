package mocks

import (
	"context"
)

// SentMail records one batched mail dispatch
type SentMail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// MockMailer is a mock implementation of notify.Mailer
type MockMailer struct {
	Sent []SentMail
	Err  error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(subject, body, from string, to []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{Subject: subject, Body: body, From: from, To: to})
	return nil
}

// MockSocialPoster is a mock implementation of notify.SocialPoster
type MockSocialPoster struct {
	Posts []string
	Calls int
	Ok    bool
	Err   error
}

func NewMockSocialPoster() *MockSocialPoster {
	return &MockSocialPoster{Ok: true}
}

func (m *MockSocialPoster) Post(ctx context.Context, text string) (bool, error) {
	m.Calls++
	if m.Err != nil {
		return false, m.Err
	}
	if m.Ok {
		m.Posts = append(m.Posts, text)
	}
	return m.Ok, nil
}
