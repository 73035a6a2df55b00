package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/contact"
)

func TestNewTemplateParams(t *testing.T) {
	t.Parallel()

	t.Run("empty optional fields get placeholders", func(t *testing.T) {
		t.Parallel()

		p := contact.NewTemplateParams(contact.Draft{Name: "Ana", Email: "ana@x.com", Message: "Hola"})

		assert.Equal(t, contact.TemplateParams{
			FromName:  "Ana",
			FromEmail: "ana@x.com",
			Company:   "No especificada",
			Phone:     "No especificado",
			Service:   "No especificado",
			Message:   "Hola",
			ToName:    "ITopIA",
		}, p)
	})

	t.Run("filled optional fields pass through", func(t *testing.T) {
		t.Parallel()

		p := contact.NewTemplateParams(contact.Draft{
			Name:    "Ana",
			Email:   "ana@x.com",
			Company: "Acme",
			Phone:   "099 123 456",
			Service: contact.ServiceSupport,
			Message: "Hola",
		})

		assert.Equal(t, "Acme", p.Company)
		assert.Equal(t, "099 123 456", p.Phone)
		assert.Equal(t, "soporte", p.Service)
	})

	t.Run("blank optional field counts as empty", func(t *testing.T) {
		t.Parallel()

		p := contact.NewTemplateParams(contact.Draft{Company: "  "})
		assert.Equal(t, contact.PlaceholderCompany, p.Company)
	})

	t.Run("map uses provider field names", func(t *testing.T) {
		t.Parallel()

		m := contact.NewTemplateParams(contact.Draft{Name: "Ana"}).Map()
		require.Len(t, m, 7)
		for _, key := range []string{"from_name", "from_email", "company", "phone", "service", "message", "to_name"} {
			assert.Contains(t, m, key)
		}
		assert.Equal(t, "Ana", m["from_name"])
		assert.Equal(t, "ITopIA", m["to_name"])
	})
}

func TestDraft_Set(t *testing.T) {
	t.Parallel()

	t.Run("overwrites only the given field", func(t *testing.T) {
		t.Parallel()

		d := contact.Draft{Name: "Ana", Email: "ana@x.com"}
		require.NoError(t, d.Set(contact.FieldCompany, "Acme"))

		assert.Equal(t, contact.Draft{Name: "Ana", Email: "ana@x.com", Company: "Acme"}, d)
	})

	t.Run("every field round-trips through Get", func(t *testing.T) {
		t.Parallel()

		var d contact.Draft
		values := map[contact.Field]string{
			contact.FieldName:    "Ana",
			contact.FieldEmail:   "ana@x.com",
			contact.FieldCompany: "Acme",
			contact.FieldPhone:   "123",
			contact.FieldService: "ia",
			contact.FieldMessage: "Hola",
		}
		for f, v := range values {
			require.NoError(t, d.Set(f, v))
		}
		for f, v := range values {
			assert.Equal(t, v, d.Get(f))
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var d contact.Draft
		err := d.Set(contact.Field("address"), "x")
		require.ErrorIs(t, err, contact.ErrUnknownField)
		assert.True(t, d.IsZero())
	})

	t.Run("unknown service", func(t *testing.T) {
		t.Parallel()

		d := contact.Draft{Service: contact.ServiceAI}
		err := d.Set(contact.FieldService, "blockchain")
		require.ErrorIs(t, err, contact.ErrUnknownService)
		assert.Equal(t, contact.ServiceAI, d.Service)
	})

	t.Run("service can be cleared", func(t *testing.T) {
		t.Parallel()

		d := contact.Draft{Service: contact.ServiceAI}
		require.NoError(t, d.Set(contact.FieldService, ""))
		assert.Equal(t, contact.ServiceNone, d.Service)
	})
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := contact.ParseField("message")
	require.NoError(t, err)
	assert.Equal(t, contact.FieldMessage, f)

	_, err = contact.ParseField("Message")
	require.ErrorIs(t, err, contact.ErrUnknownField)
}

func TestServiceOptions(t *testing.T) {
	t.Parallel()

	opts := contact.ServiceOptions()
	require.Len(t, opts, 7)
	assert.Equal(t, contact.ServiceNone, opts[0].ID)
	assert.Equal(t, "Selecciona un servicio", opts[0].Label)

	ids := make([]string, 0, len(opts)-1)
	for _, o := range opts[1:] {
		ids = append(ids, string(o.ID))
	}
	assert.Equal(t, []string{"soporte", "consultoria", "asesoria", "modernizacion", "ia", "procesos"}, ids)

	assert.Equal(t, "Herramientas de IA", contact.ServiceAI.Label())
	assert.True(t, contact.ServiceProcesses.Valid())
	assert.False(t, contact.Service("otro").Valid())

	opts[1].Label = "changed"
	assert.Equal(t, "Soporte IT", contact.ServiceSupport.Label(), "returned slice must be a copy")
}

func TestDispatchError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	t.Run("wraps cause and sentinel", func(t *testing.T) {
		t.Parallel()

		err := contact.NewDispatchError(cause)
		require.ErrorIs(t, err, contact.ErrDispatchFailed)
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, contact.IsDispatchError(err))
	})

	t.Run("does not double wrap", func(t *testing.T) {
		t.Parallel()

		inner := contact.NewDispatchError(cause)
		assert.Same(t, inner, contact.NewDispatchError(inner))
	})

	t.Run("dispatcher func wraps failures", func(t *testing.T) {
		t.Parallel()

		d := contact.DispatcherFunc(func(context.Context, contact.Draft) error { return cause })
		err := d.Submit(context.Background(), contact.Draft{})
		require.True(t, contact.IsDispatchError(err))
		require.ErrorIs(t, err, cause)
	})

	t.Run("dispatcher func success", func(t *testing.T) {
		t.Parallel()

		d := contact.DispatcherFunc(func(context.Context, contact.Draft) error { return nil })
		require.NoError(t, d.Submit(context.Background(), contact.Draft{}))
	})
}
