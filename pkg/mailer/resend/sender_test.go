package resend

import (
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/mailer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Config{SenderEmail: "web@itopia.dev"})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(Config{APIKey: "re_test"})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	s, err := New(Config{APIKey: "re_test", SenderEmail: "web@itopia.dev"})
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSender_request(t *testing.T) {
	t.Parallel()

	s, err := New(Config{APIKey: "re_test", SenderEmail: "web@itopia.dev", SenderName: "ITopIA"})
	require.NoError(t, err)

	req := s.request(&mailer.Email{
		To:      []string{"inbox@itopia.dev"},
		ReplyTo: "ana@example.com",
		Subject: "Hola",
		HTML:    "<p>Hola</p>",
		Text:    "Hola",
		Tags:    map[string]string{"source": "contact", "kind": "lead"},
	})

	assert.Equal(t, "ITopIA <web@itopia.dev>", req.From)
	assert.Equal(t, []string{"inbox@itopia.dev"}, req.To)
	assert.Equal(t, "ana@example.com", req.ReplyTo)
	assert.Equal(t, "Hola", req.Subject)
	assert.Equal(t, "<p>Hola</p>", req.Html)
	assert.Equal(t, "Hola", req.Text)
	assert.Equal(t, []resend.Tag{{Name: "kind", Value: "lead"}, {Name: "source", Value: "contact"}}, req.Tags)

	req = s.request(&mailer.Email{From: "otro@itopia.dev", To: []string{"x@y.co"}})
	assert.Equal(t, "otro@itopia.dev", req.From)
	assert.Empty(t, req.Tags)
}

func TestConfig_From(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "web@itopia.dev", Config{SenderEmail: "web@itopia.dev"}.From())
	assert.Equal(t, "ITopIA <web@itopia.dev>", Config{SenderEmail: "web@itopia.dev", SenderName: "ITopIA"}.From())
}
