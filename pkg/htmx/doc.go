// Package htmx reads htmx request headers and builds htmx responses.
//
//	resp := htmx.NewResponse(
//		htmx.WithEvent("toast", map[string]string{"kind": "sent"}),
//		htmx.WithOOB(views.Toast(t)),
//	)
//	if err := resp.Apply(w); err != nil {
//		return err
//	}
package htmx
