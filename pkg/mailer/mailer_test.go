package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"contact.md": &fstest.MapFile{
			Data: []byte("---\nsubject: \"Mensaje de {{.Name}}\"\n---\nHola **{{.Name}}**\n"),
		},
		"plain.md": &fstest.MapFile{
			Data: []byte("Sin asunto"),
		},
	}
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	t.Run("subject from front matter", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.To[0] == "inbox@example.com" &&
				e.Subject == "Mensaje de Ana" &&
				e.ReplyTo == "ana@example.com" &&
				e.HTML == "<html><body><p>Hola <strong>Ana</strong></p>\n</body></html>" &&
				e.Text == "Hola Ana"
		})).Return(nil).Once()

		m := New(sender, NewRenderer(testFS()), Config{})
		err := m.Send(context.Background(), Message{
			To:       "inbox@example.com",
			ReplyTo:  "ana@example.com",
			Template: "contact.md",
			Data:     map[string]string{"Name": "Ana"},
		})
		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("explicit subject wins", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.Subject == "Directo"
		})).Return(nil).Once()

		m := New(sender, NewRenderer(testFS()), Config{})
		require.NoError(t, m.Send(context.Background(), Message{
			To: "inbox@example.com", Template: "contact.md", Subject: "Directo",
			Data: map[string]string{"Name": "Ana"},
		}))
		sender.AssertExpectations(t)
	})

	t.Run("fallback subject", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.Subject == "Nuevo mensaje"
		})).Return(nil).Once()

		m := New(sender, NewRenderer(testFS()), Config{FallbackSubject: "Nuevo mensaje"})
		require.NoError(t, m.Send(context.Background(), Message{To: "inbox@example.com", Template: "plain.md"}))
		sender.AssertExpectations(t)
	})

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		m := New(sender, NewRenderer(testFS()), Config{})
		err := m.Send(context.Background(), Message{Template: "contact.md"})
		require.ErrorIs(t, err, ErrNoRecipient)
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		m := New(sender, NewRenderer(testFS()), Config{})
		err := m.Send(context.Background(), Message{To: "x@example.com", Template: "nope.md"})
		require.ErrorIs(t, err, ErrTemplateNotFound)
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("sender failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		sender := &MockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(boom).Once()

		m := New(sender, NewRenderer(testFS()), Config{})
		err := m.Send(context.Background(), Message{
			To: "x@example.com", Template: "contact.md", Data: map[string]string{"Name": "Ana"},
		})
		require.ErrorIs(t, err, ErrSendFailed)
		require.ErrorIs(t, err, boom)
	})
}

func TestEmail_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email Email
		want  error
	}{
		{name: "no recipient", email: Email{Subject: "s", HTML: "h"}, want: ErrNoRecipient},
		{name: "no subject", email: Email{To: []string{"a@b.co"}, HTML: "h"}, want: ErrNoSubject},
		{name: "no content", email: Email{To: []string{"a@b.co"}, Subject: "s"}, want: ErrNoContent},
		{name: "complete", email: Email{To: []string{"a@b.co"}, Subject: "s", HTML: "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.email.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ITopIA <hola@itopia.dev>", Address("ITopIA", "hola@itopia.dev"))
	assert.Equal(t, "hola@itopia.dev", Address("", "hola@itopia.dev"))
}
