// Package emailjs is a minimal client for the EmailJS REST API and the
// default contact.Dispatcher of the site.
//
// Usage:
//
//	client, err := emailjs.New(emailjs.Config{
//		ServiceID:  "service_xxx",
//		TemplateID: "template_xxx",
//		PublicKey:  "public key",
//	})
//	if err != nil {
//		return err
//	}
//	err = client.Submit(ctx, draft) // *contact.DispatchError on failure
//
// The client makes exactly one request per call and never retries.
package emailjs
