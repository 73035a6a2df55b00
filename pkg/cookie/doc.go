// Package cookie manages HTTP cookies with signing, encryption and one-shot
// flash values.
//
//	m, err := cookie.New(cfg.CookieSecret, cookie.WithSecure(true))
//	m.SetSigned(w, "vid", visitorID, 365*24*3600)
//	id, err := m.GetSigned(r, "vid")
//
//	_ = m.SetFlash(w, "toast", toast)
//	err = m.Flash(w, r, "toast", &toast) // read once, then deleted
package cookie
